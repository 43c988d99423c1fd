package ledgerbook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jewelsoft/saraf-api/internal/domain/entity"
	"github.com/jewelsoft/saraf-api/internal/domain/enum"
	"github.com/jewelsoft/saraf-api/internal/ledgerbook"
)

func TestBalanceDetailsOf_SynthesizedOldBalance(t *testing.T) {
	// No snapshot and no legacy field: old = current - this voucher.
	voucher := &entity.Voucher{
		Items: []entity.VoucherItem{{MetalType: enum.MetalGold, Amount: 200, FineWeight: 1}},
	}
	ledger := &entity.Ledger{Amount: 500, GoldFineWeight: 3}

	details := ledgerbook.BalanceDetailsOf(voucher, ledger)

	assert.Equal(t, "300", details.OldAmount.String())
	assert.Equal(t, "2", details.OldGold.String())
	assert.Equal(t, "500", details.CurrentAmount.String())
}

func TestBalanceDetailsOf_SnapshotPreferred(t *testing.T) {
	voucher := &entity.Voucher{
		Items: []entity.VoucherItem{{MetalType: enum.MetalGold, Amount: 200}},
		BalanceSnapshot: &entity.BalanceSnapshot{
			OldBalance: entity.OldBalanceSnapshot{TotalAmount: f(250)},
		},
		OldBalance: f(999),
	}
	ledger := &entity.Ledger{Amount: 500}

	details := ledgerbook.BalanceDetailsOf(voucher, ledger)

	assert.Equal(t, "250", details.OldAmount.String())
}

func TestBalanceDetailsOf_LegacyFieldBeforeSynthesis(t *testing.T) {
	voucher := &entity.Voucher{
		Items:      []entity.VoucherItem{{MetalType: enum.MetalGold, Amount: 200}},
		OldBalance: f(120),
	}
	ledger := &entity.Ledger{Amount: 500}

	details := ledgerbook.BalanceDetailsOf(voucher, ledger)

	assert.Equal(t, "120", details.OldAmount.String())
}

func TestBalanceDetailsOf_CurrentAlwaysLive(t *testing.T) {
	// Even with a full snapshot, the current side reads the ledger record.
	voucher := &entity.Voucher{
		BalanceSnapshot: &entity.BalanceSnapshot{
			OldBalance: entity.OldBalanceSnapshot{
				TotalAmount:    f(100),
				GoldFineWeight: f(1),
			},
		},
	}
	ledger := &entity.Ledger{Amount: 700, GoldFineWeight: 5, SilverFineWeight: 2}

	details := ledgerbook.BalanceDetailsOf(voucher, ledger)

	assert.Equal(t, "700", details.CurrentAmount.String())
	assert.Equal(t, "5", details.CurrentGold.String())
	assert.Equal(t, "2", details.CurrentSilver.String())
	assert.Equal(t, "100", details.OldAmount.String())
	assert.Equal(t, "1", details.OldGold.String())
}
