package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
)

// AssetsMarkdown renders an owner's assets as a markdown table.
func AssetsMarkdown(owner domain.Identity, assets []domain.Asset) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Assets of %s\n\n", cell(owner.String()))
	if len(assets) == 0 {
		b.WriteString("_No assets._\n")
		return b.String()
	}
	writeAssetTable(&b, assets)
	return b.String()
}

// TransactionsMarkdown renders an owner's transaction log as a markdown table.
func TransactionsMarkdown(owner domain.Identity, txns []domain.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transactions of %s\n\n", cell(owner.String()))
	if len(txns) == 0 {
		b.WriteString("_No transactions._\n")
		return b.String()
	}
	writeTransactionTable(&b, txns)
	return b.String()
}

// GoalsMarkdown renders an owner's savings goals as a markdown table.
func GoalsMarkdown(owner domain.Identity, goals []domain.Goal) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Goals of %s\n\n", cell(owner.String()))
	if len(goals) == 0 {
		b.WriteString("_No goals._\n")
		return b.String()
	}
	writeGoalTable(&b, goals)
	return b.String()
}

// SummaryMarkdown renders every list of an owner under one heading.
func SummaryMarkdown(s *domain.LedgerSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Ledger of %s\n\n", cell(s.Owner.String()))
	fmt.Fprintf(&b, "**Net worth:** %s\n\n", s.NetWorth.String())

	b.WriteString("## Assets\n\n")
	if len(s.Assets) == 0 {
		b.WriteString("_No assets._\n\n")
	} else {
		writeAssetTable(&b, s.Assets)
		b.WriteString("\n")
	}

	b.WriteString("## Transactions\n\n")
	if len(s.Transactions) == 0 {
		b.WriteString("_No transactions._\n\n")
	} else {
		writeTransactionTable(&b, s.Transactions)
		b.WriteString("\n")
	}

	b.WriteString("## Goals\n\n")
	if len(s.Goals) == 0 {
		b.WriteString("_No goals._\n")
	} else {
		writeGoalTable(&b, s.Goals)
	}
	return b.String()
}

func writeAssetTable(b *strings.Builder, assets []domain.Asset) {
	b.WriteString("| # | Type | Amount | Description |\n")
	b.WriteString("|--:|:-----|-------:|:------------|\n")
	for i, a := range assets {
		fmt.Fprintf(b, "| %d | %s | %s | %s |\n", i, cell(a.AssetType), a.Amount.String(), cell(a.Description))
	}
}

func writeTransactionTable(b *strings.Builder, txns []domain.Transaction) {
	b.WriteString("| Time | Type | Amount | Description |\n")
	b.WriteString("|:-----|:-----|-------:|:------------|\n")
	for _, t := range txns {
		fmt.Fprintf(b, "| %s | %s | %s | %s |\n", unixTime(t.Timestamp), cell(t.TransactionType), t.Amount.String(), cell(t.Description))
	}
}

func writeGoalTable(b *strings.Builder, goals []domain.Goal) {
	b.WriteString("| # | Name | Progress | Target | Deadline |\n")
	b.WriteString("|--:|:-----|---------:|-------:|:---------|\n")
	for i, g := range goals {
		fmt.Fprintf(b, "| %d | %s | %s | %s | %s |\n", i, cell(g.Name), g.CurrentAmount.String(), g.TargetAmount.String(), unixTime(g.Deadline))
	}
}

// cell keeps free text from breaking the table layout.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

func unixTime(sec uint64) string {
	if sec > 1<<62 {
		return fmt.Sprintf("%d", sec)
	}
	return time.Unix(int64(sec), 0).UTC().Format(time.RFC3339)
}
