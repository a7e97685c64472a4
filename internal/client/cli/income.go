package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/finkeeper/pkg/api"
)

func (c *Cli) runIncome(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: finkeeper income <add|list|get|update|delete>")
	}

	switch args[0] {
	case "add":
		return c.runIncomeAdd(ctx)
	case "list":
		return c.runIncomeList(ctx)
	case "get":
		return c.runIncomeGet(ctx, args[1:])
	case "update":
		return c.runIncomeUpdate(ctx, args[1:])
	case "delete":
		return c.runIncomeDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown income subcommand: %s", args[0])
	}
}

func (c *Cli) runIncomeAdd(ctx context.Context) error {
	if _, err := c.ensureSession(ctx); err != nil {
		return err
	}

	name, err := c.io.ReadInput("Revenue name: ")
	if err != nil {
		return fmt.Errorf("failed to read revenue name: %w", err)
	}

	amount, err := c.readAmount("Amount: ")
	if err != nil {
		return err
	}

	inc, err := c.apiClient.CreateIncome(ctx, api.IncomeRequest{
		NameOfRevenue: &name,
		Amount:        &amount,
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Income saved!")
	c.io.Printf("ID: %s\n", inc.ID)

	return nil
}

func (c *Cli) runIncomeList(ctx context.Context) error {
	if _, err := c.ensureSession(ctx); err != nil {
		return err
	}

	incs, err := c.apiClient.ListIncomes(ctx)
	if err != nil {
		return err
	}

	if len(incs) == 0 {
		c.io.Println("No income records.")
		return nil
	}

	c.io.Printf("%-36s  %-20s  %s\n", "ID", "REVENUE", "AMOUNT")
	for _, inc := range incs {
		c.io.Printf("%-36s  %-20s  %d\n", inc.ID, inc.NameOfRevenue, inc.Amount)
	}

	return nil
}

func (c *Cli) runIncomeGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: finkeeper income get <id>")
	}

	if _, err := c.ensureSession(ctx); err != nil {
		return err
	}

	inc, err := c.apiClient.GetIncome(ctx, args[0])
	if err != nil {
		return err
	}

	c.io.Printf("ID:       %s\n", inc.ID)
	c.io.Printf("Revenue:  %s\n", inc.NameOfRevenue)
	c.io.Printf("Amount:   %d\n", inc.Amount)
	c.io.Printf("Created:  %s\n", inc.CreatedAt.Format("2006-01-02 15:04:05"))
	c.io.Printf("Modified: %s\n", inc.ModifiedAt.Format("2006-01-02 15:04:05"))

	return nil
}

func (c *Cli) runIncomeUpdate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: finkeeper income update <id>")
	}

	if _, err := c.ensureSession(ctx); err != nil {
		return err
	}

	current, err := c.apiClient.GetIncome(ctx, args[0])
	if err != nil {
		return err
	}

	name, err := c.readWithDefault("Revenue name", current.NameOfRevenue)
	if err != nil {
		return err
	}
	amount, err := c.readAmountWithDefault("Amount", current.Amount)
	if err != nil {
		return err
	}

	inc, err := c.apiClient.UpdateIncome(ctx, args[0], api.IncomeRequest{
		NameOfRevenue: &name,
		Amount:        &amount,
	})
	if err != nil {
		return err
	}

	c.io.Println("✓ Income updated!")
	c.io.Printf("ID: %s\n", inc.ID)

	return nil
}

func (c *Cli) runIncomeDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: finkeeper income delete <id>")
	}

	if _, err := c.ensureSession(ctx); err != nil {
		return err
	}

	if err := c.apiClient.DeleteIncome(ctx, args[0]); err != nil {
		return err
	}

	c.io.Println("✓ Income deleted.")
	return nil
}
