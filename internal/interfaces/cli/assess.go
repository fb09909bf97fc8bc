package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Conor-Code-Logistic-Tech/brandability/internal/application/assessment"
	"github.com/Conor-Code-Logistic-Tech/brandability/internal/config"
	"github.com/Conor-Code-Logistic-Tech/brandability/internal/infrastructure/monitoring/logging"
	"github.com/Conor-Code-Logistic-Tech/brandability/pkg/errors"
	"github.com/Conor-Code-Logistic-Tech/brandability/pkg/types/trademark"
)

// CaseFile is the on-disk case format: a CaseRequest, optionally carrying
// separate goods lists to be cross-product expanded when no explicit pairs
// are given.
type CaseFile struct {
	trademark.CaseRequest `yaml:",inline"`

	ApplicantGoods []trademark.GoodServiceDTO `json:"applicant_goods,omitempty" yaml:"applicant_goods,omitempty"`
	OpponentGoods  []trademark.GoodServiceDTO `json:"opponent_goods,omitempty" yaml:"opponent_goods,omitempty"`
}

// NewAssessCmd assesses a full opposition case from a case file.
func NewAssessCmd() *cobra.Command {
	var (
		filePath string
		watch    bool
	)

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Assess a trademark opposition case",
		Long:  "Assess reads a case file (YAML or JSON) describing the two marks and the\ngoods/services in dispute, runs the full opposition pipeline, and prints the\npredicted outcome.\n\nWith --watch the command stays running and re-assesses the case whenever the\nconfig file changes, so engine tunables can be adjusted live.",
		Example: `  brandability assess -f case.yaml
  brandability assess -f case.json -o json
  brandability assess -f case.yaml -c brandability.yaml --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			if filePath == "" {
				return errors.InvalidParam("a case file is required (--file)")
			}

			req, err := loadCaseFile(filePath)
			if err != nil {
				return err
			}

			if watch && cliCtx.ConfigFile == "" {
				return errors.InvalidParam("--watch requires a config file (--config)")
			}

			if err := runAssessment(cmd, cliCtx, req); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			w, err := config.WatchFile(cliCtx.ConfigFile, cliCtx.Logger,
				reloadAndReassess(cmd, cliCtx, req))
			if err != nil {
				return err
			}
			defer w.Close()

			cliCtx.Logger.Info("watching config for tunables changes",
				logging.String("path", cliCtx.ConfigFile))
			<-cmd.Context().Done()
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "path to the case file (YAML or JSON)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-assess the case whenever the config file changes")
	return cmd
}

// runAssessment runs the case through the current service and prints the
// result in the configured format.
func runAssessment(cmd *cobra.Command, cliCtx *CLIContext, req trademark.CaseRequest) error {
	result, err := cliCtx.Service.AssessCase(cmd.Context(), req)
	if err != nil {
		return err
	}
	if strings.EqualFold(cliCtx.OutputFormat, "json") {
		return printJSON(cmd, result)
	}
	renderCaseResult(cmd, result)
	return nil
}

// reloadAndReassess returns the watch-mode callback: each validated config
// change rebuilds the service with the new tunables and re-runs the case.  A
// config the service rejects keeps the previous tunables in place.
func reloadAndReassess(cmd *cobra.Command, cliCtx *CLIContext, req trademark.CaseRequest) func(*config.Config) {
	return func(cfg *config.Config) {
		svc, err := assessment.NewService(cfg, cliCtx.Assessor, cliCtx.Logger, cliCtx.Metrics)
		if err != nil {
			cliCtx.Logger.Warn("keeping previous engine tunables", logging.Err(err))
			return
		}
		cliCtx.Config = cfg
		cliCtx.Service = svc
		if err := runAssessment(cmd, cliCtx, req); err != nil {
			cliCtx.Logger.Error("re-assessment failed", logging.Err(err))
		}
	}
}

// loadCaseFile parses a case file, expanding goods lists into pairs when the
// file carries no explicit pair list.
func loadCaseFile(path string) (trademark.CaseRequest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return trademark.CaseRequest{}, errors.InvalidParam(
			fmt.Sprintf("cannot read case file %q: %v", path, err))
	}

	var cf CaseFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(raw, &cf)
	default:
		err = yaml.Unmarshal(raw, &cf)
	}
	if err != nil {
		return trademark.CaseRequest{}, errors.Wrap(err, errors.ErrCodeSerialization,
			fmt.Sprintf("cannot parse case file %q", path))
	}

	if len(cf.Pairs) == 0 && len(cf.ApplicantGoods) > 0 && len(cf.OpponentGoods) > 0 {
		cf.Pairs = assessment.ExpandPairs(cf.ApplicantGoods, cf.OpponentGoods, nil)
	}
	return cf.CaseRequest, nil
}

// renderCaseResult prints the human-readable assessment summary.
func renderCaseResult(cmd *cobra.Command, res *trademark.CaseResult) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Case %s: %s vs %s\n\n", res.CaseID, res.Applicant.Wordmark, res.Opponent.Wordmark)

	fmt.Fprintln(out, "Mark similarity:")
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "  visual\t%s\t(%.3f)\n", res.MarkSimilarity.Visual, res.VisualScore)
	fmt.Fprintf(w, "  aural\t%s\t(%.3f)\n", res.MarkSimilarity.Aural, res.AuralScore)
	fmt.Fprintf(w, "  conceptual\t%s\t\n", res.MarkSimilarity.Conceptual)
	fmt.Fprintf(w, "  overall\t%s\t\n", res.MarkSimilarity.Overall)
	w.Flush()

	fmt.Fprintln(out, "\nGoods/services determinations:")
	w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  APPLICANT\tOPPONENT\tSCORE\tCONFUSION\tTYPE")
	for _, d := range res.Determinations {
		typ := string(d.ConfusionType)
		if typ == "" {
			typ = "-"
		}
		fmt.Fprintf(w, "  %s (%d)\t%s (%d)\t%.2f\t%t\t%s\n",
			d.ApplicantGood.Term, d.ApplicantGood.NiceClass,
			d.OpponentGood.Term, d.OpponentGood.NiceClass,
			d.SimilarityScore, d.LikelihoodOfConfusion, typ)
	}
	w.Flush()

	fmt.Fprintf(out, "\n%s (confidence %.2f)\n", res.Outcome.Result, res.Outcome.Confidence)
	fmt.Fprintf(out, "Reasoning: %s\n", res.Outcome.Reasoning)
}
