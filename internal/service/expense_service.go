package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/tripmate/internal/calculator"
	"github.com/mmynk/tripmate/internal/config"
	"github.com/mmynk/tripmate/internal/metrics"
	"github.com/mmynk/tripmate/internal/models"
	"github.com/mmynk/tripmate/internal/storage"
	"github.com/mmynk/tripmate/pkg/api"
	"github.com/mmynk/tripmate/pkg/api/apiconnect"
)

// ExpenseService implements the Connect ExpenseService
type ExpenseService struct {
	apiconnect.UnimplementedExpenseServiceHandler
	store storage.Store
	trip  *config.Trip
}

// NewExpenseService creates a new ExpenseService for the given trip.
func NewExpenseService(store storage.Store, trip *config.Trip) *ExpenseService {
	return &ExpenseService{store: store, trip: trip}
}

// ListTravelers returns the trip's travelers in configured order.
func (s *ExpenseService) ListTravelers(ctx context.Context, req *connect.Request[api.ListTravelersRequest]) (*connect.Response[api.ListTravelersResponse], error) {
	travelers := make([]*api.Traveler, len(s.trip.Travelers))
	for i, t := range s.trip.Travelers {
		travelers[i] = &api.Traveler{ID: t.ID, Name: t.Name}
	}
	return connect.NewResponse(&api.ListTravelersResponse{Travelers: travelers}), nil
}

// ListExpenses returns all expenses, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		slog.Error("ListExpenses failed", "error", err)
		return nil, storeError(err)
	}

	out := make([]*api.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = expenseToAPI(e)
	}
	return connect.NewResponse(&api.ListExpensesResponse{Expenses: out}), nil
}

// AddExpense records a payment. An empty payer means the first traveler and
// an empty beneficiary list means everyone.
func (s *ExpenseService) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	slog.Info("AddExpense request received",
		"payer_id", req.Msg.PayerID,
		"amount", req.Msg.Amount,
		"shared_with", req.Msg.SharedWith,
	)

	payerID := req.Msg.PayerID
	if payerID == "" {
		payerID = s.trip.Travelers[0].ID
	}
	if !s.trip.HasTraveler(payerID) {
		return nil, invalidArgument(fmt.Errorf("payer_id '%s' is not a traveler", payerID))
	}
	if req.Msg.Amount <= 0 {
		return nil, invalidArgument(errors.New("amount must be positive"))
	}
	description := strings.TrimSpace(req.Msg.Description)
	if description == "" {
		return nil, invalidArgument(errors.New("description is required"))
	}

	sharedWith, err := s.beneficiaries(req.Msg.SharedWith)
	if err != nil {
		return nil, invalidArgument(err)
	}

	expense := &models.Expense{
		PayerID:     payerID,
		Amount:      req.Msg.Amount,
		Description: description,
		SharedWith:  sharedWith,
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("AddExpense failed", "error", err)
		return nil, storeError(err)
	}

	slog.Info("Expense added", "expense_id", expense.ID, "payer_id", expense.PayerID, "amount", expense.Amount)
	return connect.NewResponse(&api.AddExpenseResponse{Expense: expenseToAPI(expense)}), nil
}

// beneficiaries validates ids, drops duplicates and defaults to every traveler.
func (s *ExpenseService) beneficiaries(ids []string) ([]string, error) {
	if len(ids) == 0 {
		return s.trip.TravelerIDs(), nil
	}

	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !s.trip.HasTraveler(id) {
			return nil, fmt.Errorf("shared_with entry '%s' is not a traveler", id)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out, nil
}

// DeleteExpense removes an expense by ID.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	slog.Info("DeleteExpense request received", "expense_id", req.Msg.ID)

	if req.Msg.ID == "" {
		return nil, invalidArgument(errors.New("id is required"))
	}
	if err := s.store.DeleteExpense(ctx, req.Msg.ID); err != nil {
		slog.Error("DeleteExpense failed", "expense_id", req.Msg.ID, "error", err)
		return nil, storeError(err)
	}

	return connect.NewResponse(&api.DeleteExpenseResponse{}), nil
}

// RecordRepayment records money handed from one traveler to another.
func (s *ExpenseService) RecordRepayment(ctx context.Context, req *connect.Request[api.RecordRepaymentRequest]) (*connect.Response[api.RecordRepaymentResponse], error) {
	slog.Info("RecordRepayment request received",
		"from_id", req.Msg.FromID,
		"to_id", req.Msg.ToID,
		"amount", req.Msg.Amount,
	)

	if !s.trip.HasTraveler(req.Msg.FromID) {
		return nil, invalidArgument(fmt.Errorf("from_id '%s' is not a traveler", req.Msg.FromID))
	}
	if !s.trip.HasTraveler(req.Msg.ToID) {
		return nil, invalidArgument(fmt.Errorf("to_id '%s' is not a traveler", req.Msg.ToID))
	}
	if req.Msg.FromID == req.Msg.ToID {
		return nil, invalidArgument(errors.New("from_id and to_id must differ"))
	}
	if req.Msg.Amount <= 0 {
		return nil, invalidArgument(errors.New("amount must be positive"))
	}

	repayment := &models.Repayment{
		FromID: req.Msg.FromID,
		ToID:   req.Msg.ToID,
		Amount: req.Msg.Amount,
		Note:   strings.TrimSpace(req.Msg.Note),
	}
	if err := s.store.CreateRepayment(ctx, repayment); err != nil {
		slog.Error("RecordRepayment failed", "error", err)
		return nil, storeError(err)
	}

	return connect.NewResponse(&api.RecordRepaymentResponse{Repayment: repaymentToAPI(repayment)}), nil
}

// ListRepayments returns all repayments, newest first.
func (s *ExpenseService) ListRepayments(ctx context.Context, req *connect.Request[api.ListRepaymentsRequest]) (*connect.Response[api.ListRepaymentsResponse], error) {
	repayments, err := s.store.ListRepayments(ctx)
	if err != nil {
		slog.Error("ListRepayments failed", "error", err)
		return nil, storeError(err)
	}

	out := make([]*api.Repayment, len(repayments))
	for i, r := range repayments {
		out[i] = repaymentToAPI(r)
	}
	return connect.NewResponse(&api.ListRepaymentsResponse{Repayments: out}), nil
}

// DeleteRepayment removes a repayment by ID.
func (s *ExpenseService) DeleteRepayment(ctx context.Context, req *connect.Request[api.DeleteRepaymentRequest]) (*connect.Response[api.DeleteRepaymentResponse], error) {
	slog.Info("DeleteRepayment request received", "repayment_id", req.Msg.ID)

	if req.Msg.ID == "" {
		return nil, invalidArgument(errors.New("id is required"))
	}
	if err := s.store.DeleteRepayment(ctx, req.Msg.ID); err != nil {
		slog.Error("DeleteRepayment failed", "repayment_id", req.Msg.ID, "error", err)
		return nil, storeError(err)
	}

	return connect.NewResponse(&api.DeleteRepaymentResponse{}), nil
}

// GetBalances computes balances and the settlement plan from the current data.
func (s *ExpenseService) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	rate, err := s.rate(req.Msg.ExchangeRate)
	if err != nil {
		return nil, invalidArgument(err)
	}

	snapshot, err := s.balances(ctx, rate)
	if err != nil {
		slog.Error("GetBalances failed", "error", err)
		return nil, storeError(err)
	}
	return connect.NewResponse(snapshot), nil
}

// WatchBalances sends the balances immediately and again after every change
// to expenses or repayments, until the client goes away.
func (s *ExpenseService) WatchBalances(ctx context.Context, req *connect.Request[api.WatchBalancesRequest], stream *connect.ServerStream[api.GetBalancesResponse]) error {
	rate, err := s.rate(req.Msg.ExchangeRate)
	if err != nil {
		return invalidArgument(err)
	}

	// Subscribe before the first read so no change falls in between.
	changes, cancel := s.store.Subscribe(storage.CollectionExpenses, storage.CollectionRepayments)
	defer cancel()

	send := func() error {
		snapshot, err := s.balances(ctx, rate)
		if err != nil {
			slog.Error("WatchBalances recompute failed", "error", err)
			return storeError(err)
		}
		return stream.Send(snapshot)
	}

	if err := send(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				return connect.NewError(connect.CodeUnavailable, errors.New("store closed"))
			}
			if err := send(); err != nil {
				return err
			}
		}
	}
}

func (s *ExpenseService) rate(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return s.trip.ExchangeRate, nil
	}
	return calculator.ParseRate(raw)
}

// balances recomputes everything from the stored records. Repayments count
// as expenses paid by the sender on behalf of the receiver alone. Ids the
// trip no longer lists still take part, named by their id.
func (s *ExpenseService) balances(ctx context.Context, rate decimal.Decimal) (*api.GetBalancesResponse, error) {
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	repayments, err := s.store.ListRepayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list repayments: %w", err)
	}

	records := make([]calculator.Expense, 0, len(expenses)+len(repayments))
	var totalSpent int64
	for _, e := range expenses {
		records = append(records, calculator.Expense{PayerID: e.PayerID, Amount: e.Amount, SharedWith: e.SharedWith})
		totalSpent += e.Amount
	}
	for _, r := range repayments {
		records = append(records, calculator.Expense{PayerID: r.FromID, Amount: r.Amount, SharedWith: []string{r.ToID}})
	}

	known := s.trip.TravelerIDs()
	participants := calculator.Participants(known, records)
	if extra := participants[len(known):]; len(extra) > 0 {
		slog.WarnContext(ctx, "Stored records name travelers missing from the trip", "ids", extra)
	}

	summary := calculator.Summarize(participants, records)
	net := make(map[string]int64, len(summary))
	balances := make([]*api.MemberBalance, len(summary))
	for i, m := range summary {
		net[m.MemberID] = m.NetBalance
		balances[i] = &api.MemberBalance{
			TravelerID:    m.MemberID,
			Name:          s.trip.TravelerName(m.MemberID),
			Paid:          m.TotalPaid,
			Owed:          m.TotalOwed,
			Net:           m.NetBalance,
			PaidConverted: calculator.Convert(m.TotalPaid, rate),
			OwedConverted: calculator.Convert(m.TotalOwed, rate),
			NetConverted:  calculator.Convert(m.NetBalance, rate),
		}
	}

	plan := calculator.PlanSettlements(participants, net)
	metrics.SetSettlementTransfers(len(plan))
	settlements := make([]*api.Transfer, len(plan))
	for i, tr := range plan {
		settlements[i] = &api.Transfer{
			FromID:          tr.From,
			ToID:            tr.To,
			Amount:          tr.Amount,
			ConvertedAmount: calculator.Convert(tr.Amount, rate),
		}
	}

	return &api.GetBalancesResponse{
		Balances:            balances,
		Settlements:         settlements,
		TotalSpent:          totalSpent,
		TotalSpentConverted: calculator.Convert(totalSpent, rate),
		ExchangeRate:        rate.String(),
		BaseCurrency:        s.trip.BaseCurrency,
		DisplayCurrency:     s.trip.DisplayCurrency,
	}, nil
}
