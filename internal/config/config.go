package config

import (
	"os"
	"strconv"

	"github.com/mikewthornton1988-glitch/Pool-bot/internal/model"
)

// Tournament holds the tournament constants. They are read once at
// process start and are immutable for the process lifetime.
type Tournament struct {
	// TableCapacity is the fixed number of seats per table
	TableCapacity int
	// BuyIn is the per-player entry amount, shown in player views
	BuyIn int
	// WinPrize is the winner payout amount, shown in player views
	WinPrize int
	// HouseCut is the amount retained per table, shown in player views
	HouseCut int
	// ReferralBonus is accrued to a winner's referrer on settlement
	ReferralBonus float64
	// AdminID gates the privileged operations
	AdminID model.PlayerID
	// CashTag is the payment handle players send buy-ins to
	CashTag string
}

// Default returns the standard tournament configuration
func Default() Tournament {
	return Tournament{
		TableCapacity: 5,
		BuyIn:         5,
		WinPrize:      20,
		HouseCut:      5,
		ReferralBonus: 2.0,
		CashTag:       "$MichaelThornton40",
	}
}

// FromEnv builds the tournament configuration from environment
// variables, falling back to defaults for anything unset
func FromEnv() Tournament {
	cfg := Default()
	cfg.TableCapacity = envInt("TABLE_SIZE", cfg.TableCapacity)
	cfg.BuyIn = envInt("BUY_IN", cfg.BuyIn)
	cfg.WinPrize = envInt("WIN_PRIZE", cfg.WinPrize)
	cfg.HouseCut = envInt("HOUSE_CUT", cfg.HouseCut)
	cfg.ReferralBonus = envFloat("PROMO_BONUS", cfg.ReferralBonus)
	cfg.AdminID = model.PlayerID(envInt64("ADMIN_ID", int64(cfg.AdminID)))
	if tag := os.Getenv("CASH_TAG"); tag != "" {
		cfg.CashTag = tag
	}
	return cfg
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
