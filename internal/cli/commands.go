package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// Commands lists every ledgerctl command in registration order.
var Commands = []subcommands.Command{
	&initializeCmd{},
	&isAdminCmd{},
	&addAssetCmd{},
	&assetsCmd{},
	&recordTransactionCmd{},
	&transactionsCmd{},
	&createGoalCmd{},
	&goalProgressCmd{},
	&goalsCmd{},
	&netWorthCmd{},
	&summaryCmd{},
	&issueTokenCmd{},
	&hashKeyCmd{},
}

// credentials are the flags a mutating command uses to prove who is acting.
type credentials struct {
	token  string
	apiKey string
}

func (c *credentials) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.token, "token", "", "JWT proving the acting identity (see issue-token).")
	f.StringVar(&c.apiKey, "api-key", "", "API key in the form identity.secret proving the acting identity.")
}

// appFrom extracts the *App passed to commander.Execute.
func appFrom(args []interface{}) (*App, bool) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "ledgerctl: no application context")
		return nil, false
	}
	app, ok := args[0].(*App)
	if !ok {
		fmt.Fprintln(os.Stderr, "ledgerctl: no application context")
	}
	return app, ok
}

func (a *App) fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(a.Err, err)
	return subcommands.ExitFailure
}

func (a *App) usage(format string, args ...interface{}) subcommands.ExitStatus {
	fmt.Fprintf(a.Err, format+"\n", args...)
	return subcommands.ExitUsageError
}
