package ports

// LicenseClassifier identifies the license of a text, returning its SPDX
// style identifier and whether the classification was confident enough.
type LicenseClassifier interface {
	Classify(text string) (string, bool)
}
