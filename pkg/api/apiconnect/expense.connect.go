package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tripmate/pkg/api"
)

// ExpenseServiceName is the fully-qualified name of the ExpenseService service.
const ExpenseServiceName = "tripmate.v1.ExpenseService"

// Procedure paths, used for routing and by interceptors.
const (
	ExpenseServiceListTravelersProcedure   = "/tripmate.v1.ExpenseService/ListTravelers"
	ExpenseServiceListExpensesProcedure    = "/tripmate.v1.ExpenseService/ListExpenses"
	ExpenseServiceAddExpenseProcedure      = "/tripmate.v1.ExpenseService/AddExpense"
	ExpenseServiceDeleteExpenseProcedure   = "/tripmate.v1.ExpenseService/DeleteExpense"
	ExpenseServiceRecordRepaymentProcedure = "/tripmate.v1.ExpenseService/RecordRepayment"
	ExpenseServiceListRepaymentsProcedure  = "/tripmate.v1.ExpenseService/ListRepayments"
	ExpenseServiceDeleteRepaymentProcedure = "/tripmate.v1.ExpenseService/DeleteRepayment"
	ExpenseServiceGetBalancesProcedure     = "/tripmate.v1.ExpenseService/GetBalances"
	ExpenseServiceWatchBalancesProcedure   = "/tripmate.v1.ExpenseService/WatchBalances"
)

// ExpenseServiceClient is a client for the tripmate.v1.ExpenseService service.
type ExpenseServiceClient interface {
	ListTravelers(context.Context, *connect.Request[api.ListTravelersRequest]) (*connect.Response[api.ListTravelersResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	AddExpense(context.Context, *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error)
	RecordRepayment(context.Context, *connect.Request[api.RecordRepaymentRequest]) (*connect.Response[api.RecordRepaymentResponse], error)
	ListRepayments(context.Context, *connect.Request[api.ListRepaymentsRequest]) (*connect.Response[api.ListRepaymentsResponse], error)
	DeleteRepayment(context.Context, *connect.Request[api.DeleteRepaymentRequest]) (*connect.Response[api.DeleteRepaymentResponse], error)
	GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error)
	WatchBalances(context.Context, *connect.Request[api.WatchBalancesRequest]) (*connect.ServerStreamForClient[api.GetBalancesResponse], error)
}

// NewExpenseServiceClient constructs a client for the tripmate.v1.ExpenseService service.
// The JSON codec is always applied; opts are appended after it.
func NewExpenseServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ExpenseServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append(clientCodecOptions(), opts...)
	return &expenseServiceClient{
		listTravelers: connect.NewClient[api.ListTravelersRequest, api.ListTravelersResponse](
			httpClient,
			baseURL+ExpenseServiceListTravelersProcedure,
			opts...,
		),
		listExpenses: connect.NewClient[api.ListExpensesRequest, api.ListExpensesResponse](
			httpClient,
			baseURL+ExpenseServiceListExpensesProcedure,
			opts...,
		),
		addExpense: connect.NewClient[api.AddExpenseRequest, api.AddExpenseResponse](
			httpClient,
			baseURL+ExpenseServiceAddExpenseProcedure,
			opts...,
		),
		deleteExpense: connect.NewClient[api.DeleteExpenseRequest, api.DeleteExpenseResponse](
			httpClient,
			baseURL+ExpenseServiceDeleteExpenseProcedure,
			opts...,
		),
		recordRepayment: connect.NewClient[api.RecordRepaymentRequest, api.RecordRepaymentResponse](
			httpClient,
			baseURL+ExpenseServiceRecordRepaymentProcedure,
			opts...,
		),
		listRepayments: connect.NewClient[api.ListRepaymentsRequest, api.ListRepaymentsResponse](
			httpClient,
			baseURL+ExpenseServiceListRepaymentsProcedure,
			opts...,
		),
		deleteRepayment: connect.NewClient[api.DeleteRepaymentRequest, api.DeleteRepaymentResponse](
			httpClient,
			baseURL+ExpenseServiceDeleteRepaymentProcedure,
			opts...,
		),
		getBalances: connect.NewClient[api.GetBalancesRequest, api.GetBalancesResponse](
			httpClient,
			baseURL+ExpenseServiceGetBalancesProcedure,
			opts...,
		),
		watchBalances: connect.NewClient[api.WatchBalancesRequest, api.GetBalancesResponse](
			httpClient,
			baseURL+ExpenseServiceWatchBalancesProcedure,
			opts...,
		),
	}
}

type expenseServiceClient struct {
	listTravelers   *connect.Client[api.ListTravelersRequest, api.ListTravelersResponse]
	listExpenses    *connect.Client[api.ListExpensesRequest, api.ListExpensesResponse]
	addExpense      *connect.Client[api.AddExpenseRequest, api.AddExpenseResponse]
	deleteExpense   *connect.Client[api.DeleteExpenseRequest, api.DeleteExpenseResponse]
	recordRepayment *connect.Client[api.RecordRepaymentRequest, api.RecordRepaymentResponse]
	listRepayments  *connect.Client[api.ListRepaymentsRequest, api.ListRepaymentsResponse]
	deleteRepayment *connect.Client[api.DeleteRepaymentRequest, api.DeleteRepaymentResponse]
	getBalances     *connect.Client[api.GetBalancesRequest, api.GetBalancesResponse]
	watchBalances   *connect.Client[api.WatchBalancesRequest, api.GetBalancesResponse]
}

func (c *expenseServiceClient) ListTravelers(ctx context.Context, req *connect.Request[api.ListTravelersRequest]) (*connect.Response[api.ListTravelersResponse], error) {
	return c.listTravelers.CallUnary(ctx, req)
}

func (c *expenseServiceClient) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *expenseServiceClient) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

func (c *expenseServiceClient) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

func (c *expenseServiceClient) RecordRepayment(ctx context.Context, req *connect.Request[api.RecordRepaymentRequest]) (*connect.Response[api.RecordRepaymentResponse], error) {
	return c.recordRepayment.CallUnary(ctx, req)
}

func (c *expenseServiceClient) ListRepayments(ctx context.Context, req *connect.Request[api.ListRepaymentsRequest]) (*connect.Response[api.ListRepaymentsResponse], error) {
	return c.listRepayments.CallUnary(ctx, req)
}

func (c *expenseServiceClient) DeleteRepayment(ctx context.Context, req *connect.Request[api.DeleteRepaymentRequest]) (*connect.Response[api.DeleteRepaymentResponse], error) {
	return c.deleteRepayment.CallUnary(ctx, req)
}

func (c *expenseServiceClient) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	return c.getBalances.CallUnary(ctx, req)
}

func (c *expenseServiceClient) WatchBalances(ctx context.Context, req *connect.Request[api.WatchBalancesRequest]) (*connect.ServerStreamForClient[api.GetBalancesResponse], error) {
	return c.watchBalances.CallServerStream(ctx, req)
}

// ExpenseServiceHandler is implemented by the server side of tripmate.v1.ExpenseService.
// ExpenseService records shared expenses and repayments and derives balances from them.
type ExpenseServiceHandler interface {
	ListTravelers(context.Context, *connect.Request[api.ListTravelersRequest]) (*connect.Response[api.ListTravelersResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	AddExpense(context.Context, *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error)
	RecordRepayment(context.Context, *connect.Request[api.RecordRepaymentRequest]) (*connect.Response[api.RecordRepaymentResponse], error)
	ListRepayments(context.Context, *connect.Request[api.ListRepaymentsRequest]) (*connect.Response[api.ListRepaymentsResponse], error)
	DeleteRepayment(context.Context, *connect.Request[api.DeleteRepaymentRequest]) (*connect.Response[api.DeleteRepaymentResponse], error)
	GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error)
	WatchBalances(context.Context, *connect.Request[api.WatchBalancesRequest], *connect.ServerStream[api.GetBalancesResponse]) error
}

// NewExpenseServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewExpenseServiceHandler(svc ExpenseServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append(handlerCodecOptions(), opts...)
	expenseListTravelersHandler := connect.NewUnaryHandler(
		ExpenseServiceListTravelersProcedure,
		svc.ListTravelers,
		opts...,
	)
	expenseListExpensesHandler := connect.NewUnaryHandler(
		ExpenseServiceListExpensesProcedure,
		svc.ListExpenses,
		opts...,
	)
	expenseAddExpenseHandler := connect.NewUnaryHandler(
		ExpenseServiceAddExpenseProcedure,
		svc.AddExpense,
		opts...,
	)
	expenseDeleteExpenseHandler := connect.NewUnaryHandler(
		ExpenseServiceDeleteExpenseProcedure,
		svc.DeleteExpense,
		opts...,
	)
	expenseRecordRepaymentHandler := connect.NewUnaryHandler(
		ExpenseServiceRecordRepaymentProcedure,
		svc.RecordRepayment,
		opts...,
	)
	expenseListRepaymentsHandler := connect.NewUnaryHandler(
		ExpenseServiceListRepaymentsProcedure,
		svc.ListRepayments,
		opts...,
	)
	expenseDeleteRepaymentHandler := connect.NewUnaryHandler(
		ExpenseServiceDeleteRepaymentProcedure,
		svc.DeleteRepayment,
		opts...,
	)
	expenseGetBalancesHandler := connect.NewUnaryHandler(
		ExpenseServiceGetBalancesProcedure,
		svc.GetBalances,
		opts...,
	)
	expenseWatchBalancesHandler := connect.NewServerStreamHandler(
		ExpenseServiceWatchBalancesProcedure,
		svc.WatchBalances,
		opts...,
	)
	return "/tripmate.v1.ExpenseService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ExpenseServiceListTravelersProcedure:
			expenseListTravelersHandler.ServeHTTP(w, r)
		case ExpenseServiceListExpensesProcedure:
			expenseListExpensesHandler.ServeHTTP(w, r)
		case ExpenseServiceAddExpenseProcedure:
			expenseAddExpenseHandler.ServeHTTP(w, r)
		case ExpenseServiceDeleteExpenseProcedure:
			expenseDeleteExpenseHandler.ServeHTTP(w, r)
		case ExpenseServiceRecordRepaymentProcedure:
			expenseRecordRepaymentHandler.ServeHTTP(w, r)
		case ExpenseServiceListRepaymentsProcedure:
			expenseListRepaymentsHandler.ServeHTTP(w, r)
		case ExpenseServiceDeleteRepaymentProcedure:
			expenseDeleteRepaymentHandler.ServeHTTP(w, r)
		case ExpenseServiceGetBalancesProcedure:
			expenseGetBalancesHandler.ServeHTTP(w, r)
		case ExpenseServiceWatchBalancesProcedure:
			expenseWatchBalancesHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedExpenseServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedExpenseServiceHandler struct{}

func (UnimplementedExpenseServiceHandler) ListTravelers(context.Context, *connect.Request[api.ListTravelersRequest]) (*connect.Response[api.ListTravelersResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripmate.v1.ExpenseService.ListTravelers is not implemented"))
}

func (UnimplementedExpenseServiceHandler) ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripmate.v1.ExpenseService.ListExpenses is not implemented"))
}

func (UnimplementedExpenseServiceHandler) AddExpense(context.Context, *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripmate.v1.ExpenseService.AddExpense is not implemented"))
}

func (UnimplementedExpenseServiceHandler) DeleteExpense(context.Context, *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripmate.v1.ExpenseService.DeleteExpense is not implemented"))
}

func (UnimplementedExpenseServiceHandler) RecordRepayment(context.Context, *connect.Request[api.RecordRepaymentRequest]) (*connect.Response[api.RecordRepaymentResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripmate.v1.ExpenseService.RecordRepayment is not implemented"))
}

func (UnimplementedExpenseServiceHandler) ListRepayments(context.Context, *connect.Request[api.ListRepaymentsRequest]) (*connect.Response[api.ListRepaymentsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripmate.v1.ExpenseService.ListRepayments is not implemented"))
}

func (UnimplementedExpenseServiceHandler) DeleteRepayment(context.Context, *connect.Request[api.DeleteRepaymentRequest]) (*connect.Response[api.DeleteRepaymentResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripmate.v1.ExpenseService.DeleteRepayment is not implemented"))
}

func (UnimplementedExpenseServiceHandler) GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripmate.v1.ExpenseService.GetBalances is not implemented"))
}

func (UnimplementedExpenseServiceHandler) WatchBalances(context.Context, *connect.Request[api.WatchBalancesRequest], *connect.ServerStream[api.GetBalancesResponse]) error {
	return connect.NewError(connect.CodeUnimplemented, errors.New("tripmate.v1.ExpenseService.WatchBalances is not implemented"))
}
