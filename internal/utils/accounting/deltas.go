package accounting

import (
	"fmt"

	"github.com/cashbox-app/cashbox_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeChanges maps a transaction to the signed deltas it applies to the
// ledgers it references. This is the single place where the effect of each
// transaction type is defined; services and repositories must not duplicate it.
//
// SALE        party += amount
// COLLECTION  party -= amount, box += amount
// PURCHASE    party += amount
// PAYMENT     party -= amount, box -= amount
// TRANSFER    box -= amount, targetBox += amount
// INCOME      box += amount
// EXPENSE     box -= amount
//
// INITIAL_BALANCE is not a delta; it sets an absolute balance and is handled
// by the dedicated initial-balance path.
func ComputeChanges(txn domain.Transaction) (domain.BalanceChanges, error) {
	changes := domain.BalanceChanges{
		Boxes:   make(map[string]decimal.Decimal),
		Parties: make(map[string]decimal.Decimal),
	}

	addBox := func(id *string, delta decimal.Decimal) error {
		if id == nil || *id == "" {
			return fmt.Errorf("transaction type %s requires a box reference", txn.TransactionType)
		}
		changes.Boxes[*id] = changes.Boxes[*id].Add(delta)
		return nil
	}
	addParty := func(id *string, delta decimal.Decimal) error {
		if id == nil || *id == "" {
			return fmt.Errorf("transaction type %s requires a party reference", txn.TransactionType)
		}
		changes.Parties[*id] = changes.Parties[*id].Add(delta)
		return nil
	}

	amount := txn.Amount

	switch txn.TransactionType {
	case domain.Sale:
		if err := addParty(txn.PartyID, amount); err != nil {
			return domain.BalanceChanges{}, err
		}
	case domain.Collection:
		if err := addParty(txn.PartyID, amount.Neg()); err != nil {
			return domain.BalanceChanges{}, err
		}
		if err := addBox(txn.BoxID, amount); err != nil {
			return domain.BalanceChanges{}, err
		}
	case domain.Purchase:
		if err := addParty(txn.PartyID, amount); err != nil {
			return domain.BalanceChanges{}, err
		}
	case domain.Payment:
		if err := addParty(txn.PartyID, amount.Neg()); err != nil {
			return domain.BalanceChanges{}, err
		}
		if err := addBox(txn.BoxID, amount.Neg()); err != nil {
			return domain.BalanceChanges{}, err
		}
	case domain.Transfer:
		if err := addBox(txn.BoxID, amount.Neg()); err != nil {
			return domain.BalanceChanges{}, err
		}
		if err := addBox(txn.TargetBoxID, amount); err != nil {
			return domain.BalanceChanges{}, err
		}
	case domain.Income:
		if err := addBox(txn.BoxID, amount); err != nil {
			return domain.BalanceChanges{}, err
		}
	case domain.Expense:
		if err := addBox(txn.BoxID, amount.Neg()); err != nil {
			return domain.BalanceChanges{}, err
		}
	case domain.InitialBalance:
		return domain.BalanceChanges{}, fmt.Errorf("INITIAL_BALANCE sets an absolute balance and has no deltas")
	default:
		return domain.BalanceChanges{}, fmt.Errorf("unhandled transaction type '%s'", txn.TransactionType)
	}

	return changes, nil
}
