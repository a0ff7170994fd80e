package api

// Amounts are integer base-currency units (won). Converted amounts are in the
// trip's display currency, rounded half away from zero.

type Traveler struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Expense struct {
	ID          string   `json:"id"`
	PayerID     string   `json:"payerId"`
	Amount      int64    `json:"amount"`
	Description string   `json:"description"`
	CreatedAt   int64    `json:"createdAt"` // unix millis
	SharedWith  []string `json:"sharedWith"`
}

type Repayment struct {
	ID        string `json:"id"`
	FromID    string `json:"fromId"`
	ToID      string `json:"toId"`
	Amount    int64  `json:"amount"`
	Note      string `json:"note,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

type MemberBalance struct {
	TravelerID    string `json:"travelerId"`
	Name          string `json:"name"`
	Paid          int64  `json:"paid"`
	Owed          int64  `json:"owed"`
	Net           int64  `json:"net"`
	PaidConverted int64  `json:"paidConverted"`
	OwedConverted int64  `json:"owedConverted"`
	NetConverted  int64  `json:"netConverted"`
}

type Transfer struct {
	FromID          string `json:"fromId"`
	ToID            string `json:"toId"`
	Amount          int64  `json:"amount"`
	ConvertedAmount int64  `json:"convertedAmount"`
}

type ItineraryItem struct {
	ID       string `json:"id"`
	Day      int32  `json:"day"`
	Time     string `json:"time"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Type     string `json:"type"`
	Notes    string `json:"notes,omitempty"`
}

type Place struct {
	Name            string  `json:"name"`
	Address         string  `json:"address"`
	Rating          float64 `json:"rating,omitempty"`
	UserRatingCount int32   `json:"userRatingCount,omitempty"`
	GoogleMapsURI   string  `json:"googleMapsUri,omitempty"`
	Day             int32   `json:"day,omitempty"`
	Source          string  `json:"source"`
}

type Route struct {
	Summary       string `json:"summary"`
	Details       string `json:"details"`
	EstimatedTime string `json:"estimatedTime"`
}

// ExpenseService

type ListTravelersRequest struct{}

type ListTravelersResponse struct {
	Travelers []*Traveler `json:"travelers"`
}

type ListExpensesRequest struct{}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type AddExpenseRequest struct {
	PayerID     string `json:"payerId"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	// SharedWith defaults to every traveler when empty.
	SharedWith []string `json:"sharedWith,omitempty"`
}

type AddExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type DeleteExpenseRequest struct {
	ID string `json:"id"`
}

type DeleteExpenseResponse struct{}

type RecordRepaymentRequest struct {
	FromID string `json:"fromId"`
	ToID   string `json:"toId"`
	Amount int64  `json:"amount"`
	Note   string `json:"note,omitempty"`
}

type RecordRepaymentResponse struct {
	Repayment *Repayment `json:"repayment"`
}

type ListRepaymentsRequest struct{}

type ListRepaymentsResponse struct {
	Repayments []*Repayment `json:"repayments"`
}

type DeleteRepaymentRequest struct {
	ID string `json:"id"`
}

type DeleteRepaymentResponse struct{}

type GetBalancesRequest struct {
	// ExchangeRate is a decimal string; empty uses the trip's default rate.
	ExchangeRate string `json:"exchangeRate,omitempty"`
}

type GetBalancesResponse struct {
	Balances            []*MemberBalance `json:"balances"`
	Settlements         []*Transfer      `json:"settlements"`
	TotalSpent          int64            `json:"totalSpent"`
	TotalSpentConverted int64            `json:"totalSpentConverted"`
	ExchangeRate        string           `json:"exchangeRate"`
	BaseCurrency        string           `json:"baseCurrency"`
	DisplayCurrency     string           `json:"displayCurrency"`
}

type WatchBalancesRequest struct {
	ExchangeRate string `json:"exchangeRate,omitempty"`
}

// ItineraryService

type ListItineraryRequest struct {
	// Day filters to one day; 0 lists every day.
	Day int32 `json:"day,omitempty"`
}

type ListItineraryResponse struct {
	Items []*ItineraryItem `json:"items"`
}

type AddItineraryItemRequest struct {
	Day      int32  `json:"day"`
	Time     string `json:"time"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Type     string `json:"type,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

type AddItineraryItemResponse struct {
	Item *ItineraryItem `json:"item"`
}

type UpdateItineraryItemRequest struct {
	Item *ItineraryItem `json:"item"`
}

type UpdateItineraryItemResponse struct {
	Item *ItineraryItem `json:"item"`
}

type DeleteItineraryItemRequest struct {
	ID string `json:"id"`
}

type DeleteItineraryItemResponse struct{}

type AutoScheduleRequest struct {
	Day   int32  `json:"day"`
	Areas string `json:"areas"`
}

type AutoScheduleResponse struct {
	Items []*ItineraryItem `json:"items"`
}

type WatchItineraryRequest struct {
	Day int32 `json:"day,omitempty"`
}

// ExplorerService

type SearchPlacesRequest struct {
	Query string `json:"query"`
}

type SearchPlacesResponse struct {
	Places []*Place `json:"places"`
}

type ParseItineraryFileRequest struct {
	Text string `json:"text"`
}

type ParseItineraryFileResponse struct {
	Places []*Place `json:"places"`
}

type ItineraryPlacesRequest struct{}

type ItineraryPlacesResponse struct {
	Places []*Place `json:"places"`
}

type CalculateRouteRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type CalculateRouteResponse struct {
	Route *Route `json:"route"`
}
