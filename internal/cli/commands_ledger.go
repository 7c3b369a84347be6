package cli

import (
	"context"
	"flag"
	"fmt"
	"math"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/google/subcommands"
)

type initializeCmd struct {
	credentials
	admin string
}

func (*initializeCmd) Name() string     { return "initialize" }
func (*initializeCmd) Synopsis() string { return "install the ledger administrator (once per deployment)" }
func (*initializeCmd) Usage() string {
	return `ledgerctl initialize -admin <identity> [-token <jwt> | -api-key <key>]

  Installs the administrator. The caller must prove it is the admin identity.
`
}

func (p *initializeCmd) SetFlags(f *flag.FlagSet) {
	p.credentials.SetFlags(f)
	f.StringVar(&p.admin, "admin", "", "Identity to install as administrator.")
}

func (p *initializeCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app, ok := appFrom(args)
	if !ok {
		return subcommands.ExitFailure
	}
	if p.admin == "" {
		return app.usage("-admin is required")
	}
	svc, err := app.Services(ctx)
	if err != nil {
		return app.fail(err)
	}
	ctx, err = app.prove(ctx, svc, p.token, p.apiKey)
	if err != nil {
		return app.fail(err)
	}
	if err := svc.Ledger.Initialize(ctx, domain.Identity(p.admin)); err != nil {
		return app.fail(err)
	}
	fmt.Fprintf(app.Out, "administrator set to %s\n", p.admin)
	return subcommands.ExitSuccess
}

type addAssetCmd struct {
	credentials
	user        string
	assetType   string
	amount      string
	description string
}

func (*addAssetCmd) Name() string     { return "add-asset" }
func (*addAssetCmd) Synopsis() string { return "append an asset to an owner's list" }
func (*addAssetCmd) Usage() string {
	return `ledgerctl add-asset -user <identity> -type <type> -amount <i128> [-description <text>] [-token <jwt> | -api-key <key>]

  Negative amounts record liabilities.
`
}

func (p *addAssetCmd) SetFlags(f *flag.FlagSet) {
	p.credentials.SetFlags(f)
	f.StringVar(&p.user, "user", "", "Owner of the asset.")
	f.StringVar(&p.assetType, "type", "", "Asset category, e.g. stock or cash.")
	f.StringVar(&p.amount, "amount", "", "Signed integer amount.")
	f.StringVar(&p.description, "description", "", "Free text.")
}

func (p *addAssetCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app, ok := appFrom(args)
	if !ok {
		return subcommands.ExitFailure
	}
	if p.user == "" {
		return app.usage("-user is required")
	}
	amount, err := domain.ParseAmount(p.amount)
	if err != nil {
		return app.usage("invalid -amount: %v", err)
	}
	svc, err := app.Services(ctx)
	if err != nil {
		return app.fail(err)
	}
	ctx, err = app.prove(ctx, svc, p.token, p.apiKey)
	if err != nil {
		return app.fail(err)
	}
	if err := svc.Ledger.AddAsset(ctx, domain.Identity(p.user), p.assetType, amount, p.description); err != nil {
		return app.fail(err)
	}
	fmt.Fprintf(app.Out, "asset added for %s\n", p.user)
	return subcommands.ExitSuccess
}

type recordTransactionCmd struct {
	credentials
	user            string
	transactionType string
	amount          string
	description     string
}

func (*recordTransactionCmd) Name() string     { return "record-transaction" }
func (*recordTransactionCmd) Synopsis() string { return "append a timestamped transaction to an owner's log" }
func (*recordTransactionCmd) Usage() string {
	return `ledgerctl record-transaction -user <identity> -type <type> -amount <i128> [-description <text>] [-token <jwt> | -api-key <key>]

  The timestamp is taken from the ledger clock.
`
}

func (p *recordTransactionCmd) SetFlags(f *flag.FlagSet) {
	p.credentials.SetFlags(f)
	f.StringVar(&p.user, "user", "", "Owner of the transaction.")
	f.StringVar(&p.transactionType, "type", "", "Transaction category, e.g. income or expense.")
	f.StringVar(&p.amount, "amount", "", "Signed integer amount.")
	f.StringVar(&p.description, "description", "", "Free text.")
}

func (p *recordTransactionCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app, ok := appFrom(args)
	if !ok {
		return subcommands.ExitFailure
	}
	if p.user == "" {
		return app.usage("-user is required")
	}
	amount, err := domain.ParseAmount(p.amount)
	if err != nil {
		return app.usage("invalid -amount: %v", err)
	}
	svc, err := app.Services(ctx)
	if err != nil {
		return app.fail(err)
	}
	ctx, err = app.prove(ctx, svc, p.token, p.apiKey)
	if err != nil {
		return app.fail(err)
	}
	if err := svc.Ledger.RecordTransaction(ctx, domain.Identity(p.user), p.transactionType, amount, p.description); err != nil {
		return app.fail(err)
	}
	fmt.Fprintf(app.Out, "transaction recorded for %s\n", p.user)
	return subcommands.ExitSuccess
}

type createGoalCmd struct {
	credentials
	user     string
	name     string
	target   string
	deadline uint64
}

func (*createGoalCmd) Name() string     { return "create-goal" }
func (*createGoalCmd) Synopsis() string { return "append a savings goal with zero progress" }
func (*createGoalCmd) Usage() string {
	return `ledgerctl create-goal -user <identity> -name <name> -target <i128> -deadline <unix> [-token <jwt> | -api-key <key>]
`
}

func (p *createGoalCmd) SetFlags(f *flag.FlagSet) {
	p.credentials.SetFlags(f)
	f.StringVar(&p.user, "user", "", "Owner of the goal.")
	f.StringVar(&p.name, "name", "", "Goal name.")
	f.StringVar(&p.target, "target", "", "Target amount.")
	f.Uint64Var(&p.deadline, "deadline", 0, "Deadline in Unix seconds. Informational only.")
}

func (p *createGoalCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app, ok := appFrom(args)
	if !ok {
		return subcommands.ExitFailure
	}
	if p.user == "" {
		return app.usage("-user is required")
	}
	target, err := domain.ParseAmount(p.target)
	if err != nil {
		return app.usage("invalid -target: %v", err)
	}
	svc, err := app.Services(ctx)
	if err != nil {
		return app.fail(err)
	}
	ctx, err = app.prove(ctx, svc, p.token, p.apiKey)
	if err != nil {
		return app.fail(err)
	}
	if err := svc.Ledger.CreateGoal(ctx, domain.Identity(p.user), p.name, target, p.deadline); err != nil {
		return app.fail(err)
	}
	fmt.Fprintf(app.Out, "goal %q created for %s\n", p.name, p.user)
	return subcommands.ExitSuccess
}

type goalProgressCmd struct {
	credentials
	user   string
	index  uint64
	amount string
}

func (*goalProgressCmd) Name() string     { return "goal-progress" }
func (*goalProgressCmd) Synopsis() string { return "add an increment to a goal's progress" }
func (*goalProgressCmd) Usage() string {
	return `ledgerctl goal-progress -user <identity> -index <n> -amount <i128> [-token <jwt> | -api-key <key>]

  Goals are addressed by zero-based position in the owner's list.
`
}

func (p *goalProgressCmd) SetFlags(f *flag.FlagSet) {
	p.credentials.SetFlags(f)
	f.StringVar(&p.user, "user", "", "Owner of the goal.")
	f.Uint64Var(&p.index, "index", 0, "Zero-based goal position.")
	f.StringVar(&p.amount, "amount", "", "Signed increment.")
}

func (p *goalProgressCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app, ok := appFrom(args)
	if !ok {
		return subcommands.ExitFailure
	}
	if p.user == "" {
		return app.usage("-user is required")
	}
	if p.index > math.MaxUint32 {
		return app.usage("-index must fit in 32 bits")
	}
	amount, err := domain.ParseAmount(p.amount)
	if err != nil {
		return app.usage("invalid -amount: %v", err)
	}
	svc, err := app.Services(ctx)
	if err != nil {
		return app.fail(err)
	}
	ctx, err = app.prove(ctx, svc, p.token, p.apiKey)
	if err != nil {
		return app.fail(err)
	}
	if err := svc.Ledger.UpdateGoalProgress(ctx, domain.Identity(p.user), uint32(p.index), amount); err != nil {
		return app.fail(err)
	}
	fmt.Fprintf(app.Out, "goal %d of %s updated\n", p.index, p.user)
	return subcommands.ExitSuccess
}
