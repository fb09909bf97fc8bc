package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Conor-Code-Logistic-Tech/brandability/internal/application/assessment"
	"github.com/Conor-Code-Logistic-Tech/brandability/internal/intelligence/semantic"
	"github.com/Conor-Code-Logistic-Tech/brandability/pkg/errors"
	"github.com/Conor-Code-Logistic-Tech/brandability/pkg/types/trademark"
)

// NewCompareCmd compares two wordmarks without a full case.
func NewCompareCmd() *cobra.Command {
	var conceptual string

	cmd := &cobra.Command{
		Use:   "compare <applicant> <opponent>",
		Short: "Compare two wordmarks",
		Long:  "Compare scores two wordmarks on the visual and aural dimensions and reports\nthe categorized similarity, including the overall judgment under the supplied\nconceptual category.",
		Example: `  brandability compare ZAREUS ZARA
  brandability compare ZAREUS ZARA --conceptual moderate -o json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			svc := cliCtx.Service
			if conceptual != "" {
				category, err := trademark.ParseCategory(conceptual)
				if err != nil {
					return errors.InvalidParam(err.Error())
				}
				svc, err = assessment.NewService(cliCtx.Config,
					semantic.NewStaticAssessor(category), cliCtx.Logger, nil)
				if err != nil {
					return err
				}
			}

			result, err := svc.CompareMarks(cmd.Context(),
				trademark.MarkDTO{Wordmark: args[0]},
				trademark.MarkDTO{Wordmark: args[1]})
			if err != nil {
				return err
			}

			if strings.EqualFold(cliCtx.OutputFormat, "json") {
				return printJSON(cmd, result)
			}
			renderComparison(cmd, args[0], args[1], result)
			return nil
		},
	}

	cmd.Flags().StringVar(&conceptual, "conceptual", "",
		"conceptual similarity category (dissimilar, low, moderate, high, identical)")
	return cmd
}

func renderComparison(cmd *cobra.Command, applicant, opponent string, res *assessment.MarkComparisonResult) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s vs %s\n\n", applicant, opponent)
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "visual\t%s\t(%.3f)\n", res.Similarity.Visual, res.VisualScore)
	fmt.Fprintf(w, "aural\t%s\t(%.3f)\n", res.Similarity.Aural, res.AuralScore)
	fmt.Fprintf(w, "conceptual\t%s\t\n", res.Similarity.Conceptual)
	fmt.Fprintf(w, "overall\t%s\t\n", res.Similarity.Overall)
	w.Flush()
	fmt.Fprintf(out, "\n%s\n", res.Similarity.Reasoning)
}
