package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/SscSPs/finance_ledger/internal/core/services"
	"github.com/SscSPs/finance_ledger/internal/utils"
	"github.com/google/subcommands"
)

type issueTokenCmd struct {
	identity string
}

func (*issueTokenCmd) Name() string     { return "issue-token" }
func (*issueTokenCmd) Synopsis() string { return "sign a JWT proving an identity with the configured secret" }
func (*issueTokenCmd) Usage() string {
	return `ledgerctl issue-token -identity <identity>

  Operator tool. Anyone holding JWT_SECRET can act as any identity.
`
}

func (p *issueTokenCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.identity, "identity", "", "Identity the token proves.")
}

func (p *issueTokenCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app, ok := appFrom(args)
	if !ok {
		return subcommands.ExitFailure
	}
	if p.identity == "" {
		return app.usage("-identity is required")
	}
	token, expiresAt, err := services.NewTokenService(app.Config).GenerateAccessToken(ctx, domain.Identity(p.identity))
	if err != nil {
		return app.fail(err)
	}
	fmt.Fprintln(app.Out, token)
	fmt.Fprintf(app.Err, "expires %s\n", expiresAt.Format(time.RFC3339))
	return subcommands.ExitSuccess
}

type hashKeyCmd struct {
	identity string
	secret   string
}

func (*hashKeyCmd) Name() string     { return "hash-key" }
func (*hashKeyCmd) Synopsis() string { return "create an API key and its API_KEYS entry" }
func (*hashKeyCmd) Usage() string {
	return `ledgerctl hash-key -identity <identity> [-secret <secret>]

  Prints the raw key for the caller and the identity=hash entry for API_KEYS.
  A random secret is generated when -secret is empty.
`
}

func (p *hashKeyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.identity, "identity", "", "Identity the key proves.")
	f.StringVar(&p.secret, "secret", "", "Secret part of the key.")
}

func (p *hashKeyCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app, ok := appFrom(args)
	if !ok {
		return subcommands.ExitFailure
	}
	if err := domain.Identity(p.identity).Validate(); err != nil {
		return app.usage("invalid -identity: %v", err)
	}
	secret := p.secret
	if secret == "" {
		var err error
		if secret, err = utils.GenerateSecureRandomString(24); err != nil {
			return app.fail(err)
		}
	}
	hash, err := utils.HashSecret(secret)
	if err != nil {
		return app.fail(err)
	}
	fmt.Fprintf(app.Out, "key:      %s.%s\n", p.identity, secret)
	fmt.Fprintf(app.Out, "API_KEYS: %s=%s\n", p.identity, hash)
	return subcommands.ExitSuccess
}
