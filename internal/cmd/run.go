package cmd

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	adaptergit "gitfetch/internal/adapters/git"
	adapterimage "gitfetch/internal/adapters/image"
	"gitfetch/internal/adapters/license"
	"gitfetch/internal/adapters/scanner"
	"gitfetch/internal/assets"
	"gitfetch/internal/render"
	"gitfetch/internal/services"
)

// RunCmd prints the repository summary
type RunCmd struct {
	Dir string `arg:"" optional:"" default:"." help:"Repository path (discovered upwards from here)"`

	AsciiLanguage string   `help:"Use another language's logo" placeholder:"LANG"`
	AsciiColors   []string `help:"Override logo palette with ANSI 0-15 color numbers"`
	Authors       int      `help:"Number of authors to show" default:"3"`
	DisableFields []string `help:"Info fields to hide (git, project, head, pending, version, created, languages, authors, lastchange, repo, commits, loc, size, license)"`
	Exclude       []string `help:"Paths to ignore when counting code lines" placeholder:"PATTERN"`
	Image         string   `help:"Replace the logo with an image file (png or jpeg)" type:"existingfile"`
	NoBold        bool     `help:"Disable bold formatting"`
	NoColorBlocks bool     `help:"Hide the color blocks row"`
	NoMerges      bool     `help:"Exclude merge commits from the history"`
}

// Run executes the default command
func (r *RunCmd) Run(cli *CLI) error {
	r.applySettings(cli)

	if r.AsciiLanguage != "" && !assets.IsSupported(r.AsciiLanguage) {
		return fmt.Errorf("unsupported logo language %q (supported: %s)",
			r.AsciiLanguage, strings.Join(assets.Supported(), ", "))
	}
	fields, err := render.ParseDisabledFields(r.DisableFields)
	if err != nil {
		return err
	}

	collector := services.NewCollector(
		adaptergit.NewLocator(),
		adaptergit.NewCLIClient(),
		scanner.NewCounter(),
		license.NewClassifier(),
	)
	summary, err := collector.Collect(context.Background(), services.CollectOptions{
		Dir:        r.Dir,
		NoMerges:   r.NoMerges,
		MaxAuthors: r.Authors,
		Exclude:    r.Exclude,
	})
	if err != nil {
		return err
	}

	opts := render.Options{
		Logo:           r.AsciiLanguage,
		ColorOverrides: r.AsciiColors,
		Fields:         fields,
		Bold:           !r.NoBold,
		NoColorBlocks:  r.NoColorBlocks,
	}
	if r.Image != "" {
		img, err := loadImage(r.Image)
		if err != nil {
			return err
		}
		opts.Image = img
		opts.Backend = adapterimage.NewANSIBackend()
	}

	fmt.Print(render.Render(summary, opts))
	return nil
}

// applySettings fills flags still at their default from settings.json
func (r *RunCmd) applySettings(cli *CLI) {
	s := cli.settings
	if s == nil {
		return
	}

	if r.AsciiLanguage == "" {
		r.AsciiLanguage = s.AsciiLanguage
	}
	if len(r.AsciiColors) == 0 {
		r.AsciiColors = s.AsciiColors
	}
	if r.Authors == 3 && s.Authors != nil {
		r.Authors = *s.Authors
	}
	if len(r.DisableFields) == 0 {
		r.DisableFields = s.DisableFields
	}
	if len(r.Exclude) == 0 {
		r.Exclude = s.Exclude
	}
	if !r.NoBold && s.NoBold != nil {
		r.NoBold = *s.NoBold
	}
	if !r.NoColorBlocks && s.NoColorBlocks != nil {
		r.NoColorBlocks = *s.NoColorBlocks
	}
	if !r.NoMerges && s.NoMerges != nil {
		r.NoMerges = *s.NoMerges
	}
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}
