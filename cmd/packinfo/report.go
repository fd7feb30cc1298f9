package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/packvar/config"
	"github.com/katalvlaran/packvar/pack"
)

// report is the printed form of a layout.
type report struct {
	Size             int             `json:"size" yaml:"size"`
	ParentNode       int             `json:"parent_node_id" yaml:"parent_node_id"`
	ChildCount       int             `json:"child_count" yaml:"child_count"`
	MulstdPolicy     string          `json:"mulstd_policy" yaml:"mulstd_policy"`
	RandomEffectSize int             `json:"random_effect_size" yaml:"random_effect_size"`
	Variables        []pack.Variable `json:"variables" yaml:"variables"`
}

func newReport(l *pack.Layout) report {
	return report{
		Size:             l.Size(),
		ParentNode:       l.ParentNodeID(),
		ChildCount:       l.ChildCount(),
		MulstdPolicy:     l.MulstdPolicy().String(),
		RandomEffectSize: l.RandomEffectSize(),
		Variables:        l.Variables(),
	}
}

// write renders r in the given format.
func write(w io.Writer, format string, r report) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeText(w, r)
	}
}

// writeText prints a summary line and an aligned table; absent ids print as null.
func writeText(w io.Writer, r report) error {
	if _, err := fmt.Fprintf(w, "size=%d parent_node_id=%d child_count=%d mulstd_policy=%s random_effect_size=%d\n",
		r.Size, r.ParentNode, r.ChildCount, r.MulstdPolicy, r.RandomEffectSize); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "var_id\tvar_type\tsmooth_id\tage_index\ttime_index\tnode_id\trate_id\tintegrand_id\tcovariate_id\tprior_id")
	for _, v := range r.Variables {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			v.Index, v.Type, v.Smooth, v.AgeIndex, v.TimeIndex, v.Node, v.Rate, v.Integrand, v.Covariate, v.Prior)
	}

	return tw.Flush()
}
