package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/memkit/block"
	"github.com/joshuapare/memkit/internal/vmem"
)

func init() {
	rootCmd.AddCommand(newProbeCmd())
}

func newProbeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Report the platform's paging characteristics",
		Long: `The probe command reports the standard page size, the huge-page size the
allocator targets, and whether huge-page backing can be attempted. It also
performs one trial huge-page-sized allocation and reports the strategy that
was actually applied.

Example:
  memctl probe
  memctl probe --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe()
		},
	}
	return cmd
}

type probeReport struct {
	PageSize      int    `json:"page_size"`
	HugePageSize  int    `json:"huge_page_size"`
	HugeAttempt   bool   `json:"huge_attemptable"`
	TrialStrategy string `json:"trial_strategy"`
	TrialFlags    uint32 `json:"trial_flags"`
}

func runProbe() error {
	report := probeReport{
		PageSize:     vmem.PageSize(),
		HugePageSize: vmem.HugePageSize,
		HugeAttempt:  vmem.CanAttemptHuge(),
	}

	printVerbose("allocating %d bytes to probe the huge-page path\n", vmem.HugePageSize)
	m, err := block.Allocate(vmem.HugePageSize, false, false)
	if err != nil {
		return fmt.Errorf("trial allocation failed: %w", err)
	}
	report.TrialFlags = uint32(m.Flags())
	switch m.Strategy() {
	case block.StrategyHugePage:
		report.TrialStrategy = "huge-page"
	default:
		report.TrialStrategy = "standard"
	}
	if err := m.Free(); err != nil {
		return fmt.Errorf("trial release failed: %w", err)
	}

	if jsonOut {
		return printJSON(report)
	}

	p := message.NewPrinter(language.English)
	printInfo("Paging characteristics:\n")
	printInfo("  Page size: %s bytes\n", p.Sprintf("%d", report.PageSize))
	printInfo("  Huge-page size: %s bytes\n", p.Sprintf("%d", report.HugePageSize))
	printInfo("  Huge pages attemptable: %v\n", report.HugeAttempt)
	printInfo("\nTrial allocation (%s bytes):\n", p.Sprintf("%d", vmem.HugePageSize))
	printInfo("  Strategy: %s\n", report.TrialStrategy)
	printInfo("  Flags: 0x%x\n", report.TrialFlags)
	return nil
}
