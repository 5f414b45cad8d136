package main

import (
	"fmt"
	"path/filepath"

	"github.com/lightningnetwork/lnd/signal"
	"github.com/urfave/cli"

	"github.com/lodestake/staked/bankclient"
	"github.com/lodestake/staked/clock"
	stakedcfg "github.com/lodestake/staked/config"
	"github.com/lodestake/staked/ledger"
	ledgersrv "github.com/lodestake/staked/ledger/service"
	"github.com/lodestake/staked/log"
	"github.com/lodestake/staked/types"
	"github.com/lodestake/staked/util"
)

var startCommand = cli.Command{
	Name:        "start",
	Usage:       "Start the Staking Ledger Daemon",
	Description: "Start the Staking Ledger Daemon. Note that a home directory should be initialized beforehand",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  homeFlag,
			Usage: "The path to the staking ledger home directory",
			Value: stakedcfg.DefaultStakedDir,
		},
	},
	Action: start,
}

func start(ctx *cli.Context) error {
	homePath, err := filepath.Abs(ctx.String(homeFlag))
	if err != nil {
		return err
	}
	homePath = util.CleanAndExpandPath(homePath)

	cfg, err := stakedcfg.LoadConfig(homePath)
	if err != nil {
		return fmt.Errorf("failed to load config at %s: %w", homePath, err)
	}

	logger, err := log.NewRootLoggerWithFile(stakedcfg.LogFile(homePath), cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to load the logger: %w", err)
	}

	custody := types.AccountID(cfg.CustodyAccount)

	stakeBank, err := bankclient.NewBank(cfg.BankBackend, cfg.StakeDenom, custody, logger)
	if err != nil {
		return fmt.Errorf("failed to create the stake token bank: %w", err)
	}

	rewardBank, err := bankclient.NewBank(cfg.BankBackend, cfg.RewardDenom, custody, logger)
	if err != nil {
		return fmt.Errorf("failed to create the reward token bank: %w", err)
	}

	var src clock.Source
	switch cfg.TimeMode {
	case "height":
		src = clock.NewHeightSource(0)
	default:
		src = clock.NewTimestampSource(nil)
	}

	engine, err := ledger.NewEngine(cfg, cfg.Policy.Params(), stakeBank, rewardBank, src, logger, nil)
	if err != nil {
		return fmt.Errorf("failed to create the staking ledger engine: %w", err)
	}

	// Hook interceptor for os signals.
	shutdownInterceptor, err := signal.Intercept()
	if err != nil {
		return err
	}

	srv := ledgersrv.NewLedgerServer(logger, engine, shutdownInterceptor)

	return srv.RunUntilShutdown()
}
