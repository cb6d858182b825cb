package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polkiloo/expense-tracker/internal/server/http/dto"
)

func expensesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Manage your expenses",
	}
	cmd.AddCommand(
		expensesAddCmd(opts),
		expensesListCmd(opts),
		expensesGetCmd(opts),
		expensesUpdateCmd(opts),
		expensesDeleteCmd(opts),
		expensesStatsCmd(opts),
	)
	return cmd
}

func expensesAddCmd(opts *options) *cobra.Command {
	var description, amount, category string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.authedClient()
			if err != nil {
				return err
			}
			a := dto.Amount(amount)
			req := dto.CreateExpenseRequest{Description: description, Amount: &a}
			if cmd.Flags().Changed("category") {
				req.Category = &category
			}
			resp, err := client.CreateExpense(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			renderExpenses(cmd.OutOrStdout(), []dto.ExpenseResponse{resp.Expense})
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "what the money was spent on")
	cmd.Flags().StringVar(&amount, "amount", "", "amount spent")
	cmd.Flags().StringVar(&category, "category", "", "optional category")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func expensesListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.authedClient()
			if err != nil {
				return err
			}
			expenses, err := client.ListExpenses(cmd.Context())
			if err != nil {
				return err
			}
			renderExpenses(cmd.OutOrStdout(), expenses)
			return nil
		},
	}
}

func expensesGetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.authedClient()
			if err != nil {
				return err
			}
			expense, err := client.GetExpense(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderExpenses(cmd.OutOrStdout(), []dto.ExpenseResponse{*expense})
			return nil
		},
	}
}

func expensesUpdateCmd(opts *options) *cobra.Command {
	var description, amount, category string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change fields of an expense; an empty --category clears it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.authedClient()
			if err != nil {
				return err
			}
			var req dto.UpdateExpenseRequest
			if cmd.Flags().Changed("description") {
				req.Description = &description
			}
			if cmd.Flags().Changed("amount") {
				a := dto.Amount(amount)
				req.Amount = &a
			}
			if cmd.Flags().Changed("category") {
				req.Category = &category
			}
			resp, err := client.UpdateExpense(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			renderExpenses(cmd.OutOrStdout(), []dto.ExpenseResponse{resp.Expense})
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&amount, "amount", "", "new amount")
	cmd.Flags().StringVar(&category, "category", "", "new category")
	return cmd
}

func expensesDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.authedClient()
			if err != nil {
				return err
			}
			msg, err := client.DeleteExpense(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

func expensesStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show spending by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.authedClient()
			if err != nil {
				return err
			}
			stats, err := client.Stats(cmd.Context())
			if err != nil {
				return err
			}
			renderStats(cmd.OutOrStdout(), stats)
			return nil
		},
	}
}
