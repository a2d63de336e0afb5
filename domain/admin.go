package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TopSoldItemsLimit = 7
	NotAvailable      = "N/A"
	UnknownStatus     = "Unknown"
)

var (
	MessageSuccessGetOverview      = "overview retrieved successfully"
	MessageSuccessGetDashboardData = "dashboard data retrieved successfully"

	MessageFailedGetOverview      = "Failed to fetch overview data"
	MessageFailedGetDashboardData = "Failed to fetch dashboard data"
	MessageDateRequired           = "Date parameter is required"
	MessageInvalidDate            = "Invalid date format. Use YYYY-MM-DD."

	ErrDateRequired = errors.New("date parameter is required")
	ErrInvalidDate  = errors.New("invalid date format")
)

type (
	TopSoldItem struct {
		ID    string `json:"id"`
		Label string `json:"label"`
		Value int    `json:"value"`
	}

	DetailedOrder struct {
		OrderID       string          `json:"orderId"`
		EmployeeName  string          `json:"employeeName"`
		EmployeeEmail string          `json:"employeeEmail"`
		OrderDate     time.Time       `json:"orderDate"`
		TotalAmount   decimal.Decimal `json:"totalAmount"`
		Status        string          `json:"status"`
	}

	OverviewResponse struct {
		TotalRevenue   decimal.Decimal `json:"totalRevenue"`
		TotalOrders    int             `json:"totalOrders"`
		TopSoldItems   []TopSoldItem   `json:"topSoldItems"`
		DetailedOrders []DetailedOrder `json:"detailedOrders"`
	}

	RevenuePoint struct {
		X string          `json:"x"`
		Y decimal.Decimal `json:"y"`
	}

	RevenueSeries struct {
		ID   string         `json:"id"`
		Data []RevenuePoint `json:"data"`
	}

	SoldItemQuantity struct {
		Item     string `json:"item"`
		Quantity int    `json:"quantity"`
	}

	DashboardDataResponse struct {
		RevenueData       []RevenueSeries    `json:"revenueData"`
		MostSoldItemsData []SoldItemQuantity `json:"mostSoldItemsData"`
	}
)
