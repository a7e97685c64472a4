package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iudanet/finkeeper/pkg/api"
)

func (c *Cli) runExpense(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: finkeeper expense <add|list|get|update|delete>")
	}

	switch args[0] {
	case "add":
		return c.runExpenseAdd(ctx)
	case "list":
		return c.runExpenseList(ctx)
	case "get":
		return c.runExpenseGet(ctx, args[1:])
	case "update":
		return c.runExpenseUpdate(ctx, args[1:])
	case "delete":
		return c.runExpenseDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown expense subcommand: %s", args[0])
	}
}

func (c *Cli) runExpenseAdd(ctx context.Context) error {
	if _, err := c.ensureSession(ctx); err != nil {
		return err
	}

	category, err := c.io.ReadInput("Category: ")
	if err != nil {
		return fmt.Errorf("failed to read category: %w", err)
	}

	name, err := c.io.ReadInput("Item name: ")
	if err != nil {
		return fmt.Errorf("failed to read item name: %w", err)
	}

	amount, err := c.readAmount("Estimated amount: ")
	if err != nil {
		return err
	}

	exp, err := c.apiClient.CreateExpenditure(ctx, api.ExpenditureRequest{
		Category:        &category,
		NameOfItem:      &name,
		EstimatedAmount: &amount,
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Expenditure saved!")
	c.io.Printf("ID: %s\n", exp.ID)

	return nil
}

func (c *Cli) runExpenseList(ctx context.Context) error {
	if _, err := c.ensureSession(ctx); err != nil {
		return err
	}

	exps, err := c.apiClient.ListExpenditures(ctx)
	if err != nil {
		return err
	}

	if len(exps) == 0 {
		c.io.Println("No expenditure records.")
		return nil
	}

	c.io.Printf("%-36s  %-15s  %-20s  %s\n", "ID", "CATEGORY", "ITEM", "AMOUNT")
	for _, exp := range exps {
		c.io.Printf("%-36s  %-15s  %-20s  %d\n", exp.ID, exp.Category, exp.NameOfItem, exp.EstimatedAmount)
	}

	return nil
}

func (c *Cli) runExpenseGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: finkeeper expense get <id>")
	}

	if _, err := c.ensureSession(ctx); err != nil {
		return err
	}

	exp, err := c.apiClient.GetExpenditure(ctx, args[0])
	if err != nil {
		return err
	}

	c.io.Printf("ID:       %s\n", exp.ID)
	c.io.Printf("Category: %s\n", exp.Category)
	c.io.Printf("Item:     %s\n", exp.NameOfItem)
	c.io.Printf("Amount:   %d\n", exp.EstimatedAmount)
	c.io.Printf("Created:  %s\n", exp.CreatedAt.Format("2006-01-02 15:04:05"))
	c.io.Printf("Modified: %s\n", exp.ModifiedAt.Format("2006-01-02 15:04:05"))

	return nil
}

func (c *Cli) runExpenseUpdate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: finkeeper expense update <id>")
	}

	if _, err := c.ensureSession(ctx); err != nil {
		return err
	}

	current, err := c.apiClient.GetExpenditure(ctx, args[0])
	if err != nil {
		return err
	}

	category, err := c.readWithDefault("Category", current.Category)
	if err != nil {
		return err
	}
	name, err := c.readWithDefault("Item name", current.NameOfItem)
	if err != nil {
		return err
	}
	amount, err := c.readAmountWithDefault("Estimated amount", current.EstimatedAmount)
	if err != nil {
		return err
	}

	exp, err := c.apiClient.UpdateExpenditure(ctx, args[0], api.ExpenditureRequest{
		Category:        &category,
		NameOfItem:      &name,
		EstimatedAmount: &amount,
	})
	if err != nil {
		return err
	}

	c.io.Println("✓ Expenditure updated!")
	c.io.Printf("ID: %s\n", exp.ID)

	return nil
}

func (c *Cli) runExpenseDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: finkeeper expense delete <id>")
	}

	if _, err := c.ensureSession(ctx); err != nil {
		return err
	}

	if err := c.apiClient.DeleteExpenditure(ctx, args[0]); err != nil {
		return err
	}

	c.io.Println("✓ Expenditure deleted.")
	return nil
}

func (c *Cli) readAmount(prompt string) (int64, error) {
	input, err := c.io.ReadInput(prompt)
	if err != nil {
		return 0, fmt.Errorf("failed to read amount: %w", err)
	}

	amount, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("amount must be a whole number: %w", err)
	}

	return amount, nil
}

func (c *Cli) readAmountWithDefault(label string, current int64) (int64, error) {
	input, err := c.io.ReadInput(fmt.Sprintf("%s [%d]: ", label, current))
	if err != nil {
		return 0, fmt.Errorf("failed to read amount: %w", err)
	}
	if input == "" {
		return current, nil
	}

	amount, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("amount must be a whole number: %w", err)
	}

	return amount, nil
}
