package cli

import (
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/rook-computer/cardmaker/internal/errors"
)

// fileConfig is the TOML form of the card flags. Keys use the flag names
// with dashes turned into underscores:
//
//	title = "octo/demo"
//	subtitle = "A tiny demo"
//	github_mark = "assets/mark.png"
//	hold = "30s"
type fileConfig struct {
	Output      string        `toml:"output"`
	Title       string        `toml:"title"`
	Subtitle    string        `toml:"subtitle"`
	Author      string        `toml:"author"`
	SHA         string        `toml:"sha"`
	Logo        string        `toml:"logo"`
	GitHubMark  string        `toml:"github_mark"`
	FontRegular string        `toml:"font_regular"`
	FontBold    string        `toml:"font_bold"`
	QR          string        `toml:"qr"`
	Framebuffer string        `toml:"framebuffer"`
	Hold        time.Duration `toml:"hold"`
}

// loadConfig decodes path. Unknown keys are rejected so typos do not pass
// silently.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// apply copies every non-empty config value into opts unless the matching
// flag was given on the command line.
func (c fileConfig) apply(cmd *cobra.Command, opts *cardOpts) {
	fields := []struct {
		flag  string
		value string
		dst   *string
	}{
		{"output", c.Output, &opts.output},
		{"title", c.Title, &opts.title},
		{"subtitle", c.Subtitle, &opts.subtitle},
		{"author", c.Author, &opts.author},
		{"sha", c.SHA, &opts.sha},
		{"logo", c.Logo, &opts.logo},
		{"github-mark", c.GitHubMark, &opts.githubMark},
		{"font-regular", c.FontRegular, &opts.fontRegular},
		{"font-bold", c.FontBold, &opts.fontBold},
		{"qr", c.QR, &opts.qr},
		{"framebuffer", c.Framebuffer, &opts.framebuffer},
	}
	for _, f := range fields {
		if f.value != "" && !cmd.Flags().Changed(f.flag) {
			*f.dst = f.value
		}
	}
	if c.Hold > 0 && !cmd.Flags().Changed("hold") {
		opts.hold = c.Hold
	}
}
