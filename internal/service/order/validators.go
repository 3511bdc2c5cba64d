package order

import "marketplace/internal/entities"

func validateDraft(draft entities.OrderDraft) error {
	if len(draft.Items) == 0 {
		return ErrEmptyItems
	}
	for _, item := range draft.Items {
		if item.Quantity <= 0 {
			return ErrInvalidQuantity
		}
	}
	if !draft.PaymentMethod.Valid() {
		return ErrInvalidPaymentMethod
	}
	return nil
}
