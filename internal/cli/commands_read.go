package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/google/subcommands"
)

// owner is the single flag every read command shares.
type owner struct {
	user string
}

func (o *owner) SetFlags(f *flag.FlagSet) {
	f.StringVar(&o.user, "user", "", "Owner to read.")
}

type assetsCmd struct{ owner }

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "list an owner's assets" }
func (*assetsCmd) Usage() string    { return "ledgerctl assets -user <identity>\n" }

func (p *assetsCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app, ok := appFrom(args)
	if !ok {
		return subcommands.ExitFailure
	}
	if p.user == "" {
		return app.usage("-user is required")
	}
	svc, err := app.Services(ctx)
	if err != nil {
		return app.fail(err)
	}
	assets, err := svc.Ledger.GetAssets(ctx, domain.Identity(p.user))
	if err != nil {
		return app.fail(err)
	}
	app.printMarkdown(AssetsMarkdown(domain.Identity(p.user), assets))
	return subcommands.ExitSuccess
}

type transactionsCmd struct{ owner }

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "list an owner's transactions" }
func (*transactionsCmd) Usage() string    { return "ledgerctl transactions -user <identity>\n" }

func (p *transactionsCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app, ok := appFrom(args)
	if !ok {
		return subcommands.ExitFailure
	}
	if p.user == "" {
		return app.usage("-user is required")
	}
	svc, err := app.Services(ctx)
	if err != nil {
		return app.fail(err)
	}
	txns, err := svc.Ledger.GetTransactions(ctx, domain.Identity(p.user))
	if err != nil {
		return app.fail(err)
	}
	app.printMarkdown(TransactionsMarkdown(domain.Identity(p.user), txns))
	return subcommands.ExitSuccess
}

type goalsCmd struct{ owner }

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "list an owner's savings goals" }
func (*goalsCmd) Usage() string    { return "ledgerctl goals -user <identity>\n" }

func (p *goalsCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app, ok := appFrom(args)
	if !ok {
		return subcommands.ExitFailure
	}
	if p.user == "" {
		return app.usage("-user is required")
	}
	svc, err := app.Services(ctx)
	if err != nil {
		return app.fail(err)
	}
	goals, err := svc.Ledger.GetGoals(ctx, domain.Identity(p.user))
	if err != nil {
		return app.fail(err)
	}
	app.printMarkdown(GoalsMarkdown(domain.Identity(p.user), goals))
	return subcommands.ExitSuccess
}

type netWorthCmd struct{ owner }

func (*netWorthCmd) Name() string     { return "net-worth" }
func (*netWorthCmd) Synopsis() string { return "print the sum of an owner's asset amounts" }
func (*netWorthCmd) Usage() string    { return "ledgerctl net-worth -user <identity>\n" }

func (p *netWorthCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app, ok := appFrom(args)
	if !ok {
		return subcommands.ExitFailure
	}
	if p.user == "" {
		return app.usage("-user is required")
	}
	svc, err := app.Services(ctx)
	if err != nil {
		return app.fail(err)
	}
	total, err := svc.Ledger.CalculateNetWorth(ctx, domain.Identity(p.user))
	if err != nil {
		return app.fail(err)
	}
	fmt.Fprintln(app.Out, total.String())
	return subcommands.ExitSuccess
}

type isAdminCmd struct{ owner }

func (*isAdminCmd) Name() string     { return "is-admin" }
func (*isAdminCmd) Synopsis() string { return "report whether an identity is the administrator" }
func (*isAdminCmd) Usage() string    { return "ledgerctl is-admin -user <identity>\n" }

func (p *isAdminCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app, ok := appFrom(args)
	if !ok {
		return subcommands.ExitFailure
	}
	if p.user == "" {
		return app.usage("-user is required")
	}
	svc, err := app.Services(ctx)
	if err != nil {
		return app.fail(err)
	}
	isAdmin, err := svc.Ledger.IsAdmin(ctx, domain.Identity(p.user))
	if err != nil {
		return app.fail(err)
	}
	fmt.Fprintln(app.Out, isAdmin)
	return subcommands.ExitSuccess
}

type summaryCmd struct{ owner }

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "render every list of an owner with the net worth" }
func (*summaryCmd) Usage() string    { return "ledgerctl summary -user <identity>\n" }

func (p *summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app, ok := appFrom(args)
	if !ok {
		return subcommands.ExitFailure
	}
	if p.user == "" {
		return app.usage("-user is required")
	}
	svc, err := app.Services(ctx)
	if err != nil {
		return app.fail(err)
	}
	summary, err := svc.Ledger.GetSummary(ctx, domain.Identity(p.user))
	if err != nil {
		return app.fail(err)
	}
	app.printMarkdown(SummaryMarkdown(summary))
	return subcommands.ExitSuccess
}
