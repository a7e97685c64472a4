package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/iudanet/finkeeper/internal/client/api"
	"github.com/iudanet/finkeeper/internal/client/iocli"
	"github.com/iudanet/finkeeper/internal/client/storage"
)

// Cli связывает команды клиента с API и локальным хранилищем сессии
type Cli struct {
	io        iocli.IO
	apiClient *api.Client
	sessions  storage.SessionStorage
}

func New(io iocli.IO, apiClient *api.Client, sessions storage.SessionStorage) *Cli {
	return &Cli{
		io:        io,
		apiClient: apiClient,
		sessions:  sessions,
	}
}

// Run выполняет команду и завершает процесс с кодом 1 при ошибке
func (c *Cli) Run(ctx context.Context, command string, args []string) {
	var err error

	switch command {
	case "signup":
		err = c.runSignup(ctx)
	case "login":
		err = c.runLogin(ctx)
	case "logout":
		err = c.runLogout(ctx)
	case "status":
		err = c.runStatus(ctx)
	case "profile":
		err = c.runProfile(ctx, args)
	case "expense":
		err = c.runExpense(ctx, args)
	case "income":
		err = c.runIncome(ctx, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func PrintUsage() {
	fmt.Println("FinKeeper Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  finkeeper [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version       Show version information")
	fmt.Println("  --server URL    Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH       Path to local session database (default: finkeeper-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  signup                     Register new user")
	fmt.Println("  login                      Login to server")
	fmt.Println("  logout                     Logout and revoke session")
	fmt.Println("  status                     Show authentication status")
	fmt.Println("  profile show               Show user profile")
	fmt.Println("  profile update             Update user profile")
	fmt.Println("  expense add                Add expenditure record")
	fmt.Println("  expense list               List expenditure records")
	fmt.Println("  expense get <id>           Show expenditure record")
	fmt.Println("  expense update <id>        Update expenditure record")
	fmt.Println("  expense delete <id>        Delete expenditure record")
	fmt.Println("  income add                 Add income record")
	fmt.Println("  income list                List income records")
	fmt.Println("  income get <id>            Show income record")
	fmt.Println("  income update <id>         Update income record")
	fmt.Println("  income delete <id>         Delete income record")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  finkeeper signup")
	fmt.Println("  finkeeper login")
	fmt.Println("  finkeeper expense add")
	fmt.Println("  finkeeper expense list")
	fmt.Println("  finkeeper income delete b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5")
	fmt.Println("  finkeeper --server https://example.com login")
}
