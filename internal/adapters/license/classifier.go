// Package license classifies license texts with google/licensecheck.
package license

import (
	"github.com/google/licensecheck"

	"gitfetch/internal/ports"
)

// minCoverage is the fraction of the text that must match a known license
// before the classification is trusted.
const minCoverage = 75.0

// Classifier implements ports.LicenseClassifier
type Classifier struct{}

// Verify interface compliance at compile time
var _ ports.LicenseClassifier = (*Classifier)(nil)

// NewClassifier creates a new Classifier
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify implements LicenseClassifier.Classify
func (c *Classifier) Classify(text string) (string, bool) {
	cov := licensecheck.Scan([]byte(text))
	if cov.Percent < minCoverage || len(cov.Match) == 0 {
		return "", false
	}
	return cov.Match[0].ID, true
}
