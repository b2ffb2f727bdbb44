package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	postgresRepo "github.com/iho/tradebook/internal/adapter/repository/postgres"
	"github.com/iho/tradebook/internal/infrastructure/config"
	"github.com/iho/tradebook/internal/infrastructure/postgres"
	"github.com/iho/tradebook/internal/usecase"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tradebook-cli",
		Short: "Tradebook admin tool",
		Long:  `Administrative commands for the tradebook bookkeeping service.`,
	}

	root.AddCommand(migrateCmd())
	root.AddCommand(seedCmd())

	return root
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the last migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return postgres.RunMigrationsDown(cfg.DatabaseURL, cfg.MigrationsPath)
		},
	})

	return cmd
}

// seedRecords holds the sample data inserted by the seed command.
type seedRecords struct {
	Customers []usecase.CustomerInput
	Agents    []usecase.AgentInput
	Suppliers []usecase.SupplierInput
	Accounts  []usecase.BankAccountInput
}

func sampleRecords() seedRecords {
	return seedRecords{
		Customers: []usecase.CustomerInput{
			{Name: "Ahmed Trading LLC", Email: "ahmed@example.com", Phone: "+971501234567", Address: "Deira, Dubai"},
			{Name: "Fatima General Trading", Email: "fatima@example.com", Phone: "+971502345678", Address: "Bur Dubai"},
			{Name: "Hassan Electronics", Email: "hassan@example.com", Phone: "+971503456789", Address: "Sharjah"},
		},
		Agents: []usecase.AgentInput{
			{Name: "Wang Wei", Type: "usdt", USDTRate: decimal.NewFromFloat(3.67), Phone: "+8613800138000"},
			{Name: "Rashid Exchange", Type: "dhs", DHSRate: decimal.NewFromInt(1), Phone: "+971504567890"},
		},
		Suppliers: []usecase.SupplierInput{
			{Name: "Guangzhou Wholesale Co", ContactPerson: "Li Ming", Phone: "+8613900139000", RMBToUSDTRate: decimal.NewFromFloat(7.2)},
			{Name: "Yiwu Commodity Market", ContactPerson: "Chen Jie", Phone: "+8613700137000", RMBToUSDTRate: decimal.NewFromFloat(7.15)},
		},
		Accounts: []usecase.BankAccountInput{
			{AccountName: "Main AED Account", BankName: "Emirates NBD", AccountNumber: "1012345678901", Currency: "AED"},
			{AccountName: "USD Settlement Account", BankName: "Mashreq", AccountNumber: "2098765432109", Currency: "USD"},
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert sample customers, agents, suppliers and bank accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
				DatabaseURL: cfg.DatabaseURL,
				MaxConns:    cfg.DatabaseMaxConns,
				MinConns:    cfg.DatabaseMinConns,
			})
			if err != nil {
				return err
			}
			defer pool.Close()

			txManager := postgresRepo.NewTxManager(pool)
			idGen := postgresRepo.NewULIDGenerator()
			customerRepo := postgresRepo.NewCustomerRepository(pool)
			agentRepo := postgresRepo.NewAgentRepository(pool)
			supplierRepo := postgresRepo.NewSupplierRepository(pool)
			bankRepo := postgresRepo.NewBankAccountRepository(pool)
			billRepo := postgresRepo.NewBillRepository(pool)
			paymentRepo := postgresRepo.NewPaymentRepository(pool)
			settlementRepo := postgresRepo.NewSettlementRepository(pool)
			txnRepo := postgresRepo.NewSupplierTransactionRepository(pool)

			customerUC := usecase.NewCustomerUseCase(txManager, customerRepo, billRepo, paymentRepo, txnRepo, bankRepo, idGen, nil)
			agentUC := usecase.NewAgentUseCase(txManager, agentRepo, paymentRepo, settlementRepo, idGen, nil)
			supplierUC := usecase.NewSupplierUseCase(txManager, supplierRepo, txnRepo, paymentRepo, idGen, nil)
			bankUC := usecase.NewBankAccountUseCase(bankRepo, idGen)

			records := sampleRecords()

			for _, in := range records.Customers {
				if _, err := customerUC.CreateCustomer(ctx, in); err != nil {
					return fmt.Errorf("seed customer %q: %w", in.Name, err)
				}
			}
			for _, in := range records.Agents {
				if _, err := agentUC.CreateAgent(ctx, in); err != nil {
					return fmt.Errorf("seed agent %q: %w", in.Name, err)
				}
			}
			for _, in := range records.Suppliers {
				if _, err := supplierUC.CreateSupplier(ctx, in); err != nil {
					return fmt.Errorf("seed supplier %q: %w", in.Name, err)
				}
			}
			for _, in := range records.Accounts {
				if _, err := bankUC.CreateBankAccount(ctx, in); err != nil {
					return fmt.Errorf("seed bank account %q: %w", in.AccountName, err)
				}
			}

			log.Info().
				Int("customers", len(records.Customers)).
				Int("agents", len(records.Agents)).
				Int("suppliers", len(records.Suppliers)).
				Int("bank_accounts", len(records.Accounts)).
				Msg("seed data inserted")

			return nil
		},
	}
}
