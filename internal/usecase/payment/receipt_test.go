package payment

import (
	"context"
	"testing"

	"github.com/streetmarket/payment-service/internal/domain"
	paymentdto "github.com/streetmarket/payment-service/internal/usecase/dto/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmReceipt(t *testing.T) {
	f := newFixture(twoLineCart())
	out := placeTestOrder(t, f)
	require.NoError(t, f.uc.HandleGatewayEvent(context.Background(), succeededEvent(out.TransactionID)))

	err := f.uc.ConfirmReceipt(&paymentdto.ConfirmReceiptInput{
		BuyerID:   "buyer-1",
		PaymentID: out.Payments[0].ID,
	})
	require.NoError(t, err)

	stored, err := f.repo.GetPaymentByID(out.Payments[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReceived, stored.Status)
}

func TestConfirmReceipt_PendingLineRejected(t *testing.T) {
	f := newFixture(twoLineCart())
	out := placeTestOrder(t, f)

	err := f.uc.ConfirmReceipt(&paymentdto.ConfirmReceiptInput{
		BuyerID:   "buyer-1",
		PaymentID: out.Payments[0].ID,
	})
	assert.ErrorIs(t, err, domain.ErrPaymentNotPaid)
}

func TestConfirmReceipt_ForeignLineHidden(t *testing.T) {
	f := newFixture(twoLineCart())
	out := placeTestOrder(t, f)

	err := f.uc.ConfirmReceipt(&paymentdto.ConfirmReceiptInput{
		BuyerID:   "someone-else",
		PaymentID: out.Payments[0].ID,
	})
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

func TestHistoryAndReceived(t *testing.T) {
	f := newFixture(twoLineCart())
	out := placeTestOrder(t, f)
	require.NoError(t, f.uc.HandleGatewayEvent(context.Background(), succeededEvent(out.TransactionID)))
	require.NoError(t, f.uc.ConfirmReceipt(&paymentdto.ConfirmReceiptInput{
		BuyerID:   "buyer-1",
		PaymentID: out.Payments[0].ID,
	}))

	history, err := f.uc.GetHistory(&paymentdto.HistoryInput{BuyerID: "buyer-1", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), history.Total)
	assert.Equal(t, 1, history.MaxPageCount)

	received, err := f.uc.GetReceived(&paymentdto.HistoryInput{BuyerID: "buyer-1", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, received.Payments, 1)
	assert.Equal(t, domain.StatusReceived, received.Payments[0].Status)
}

func TestHistory_PageBeyondLastIsNotFound(t *testing.T) {
	f := newFixture(twoLineCart())
	placeTestOrder(t, f)

	_, err := f.uc.GetHistory(&paymentdto.HistoryInput{BuyerID: "buyer-1", Page: 9, Limit: 10})
	assert.ErrorIs(t, err, domain.ErrPageNotFound)
}
