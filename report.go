package main

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Answer struct {
	Part  int           `yaml:"part"`
	Value uint64        `yaml:"value"`
	Took  time.Duration `yaml:"took,omitempty"`
}

type Report struct {
	Input   string   `yaml:"input"`
	Answers []Answer `yaml:"answers"`

	timing bool
}

func (rep *Report) Render(w io.Writer, format string) error {
	switch format {
	case "text":
		for _, a := range rep.Answers {
			fprintf(w, "Part %v: %v\n", a.Part, a.Value)
			if rep.timing {
				fprintf(w, "Part %v took: %v\n", a.Part, a.Took)
			}
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return errors.Wrap(err, "encode report")
		}
		return enc.Close()
	}
	return errors.Errorf("unknown format %q", format)
}
