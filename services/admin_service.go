package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/azim-at/cafeBackend/entity"
	"github.com/azim-at/cafeBackend/pkg/apperr"
	"github.com/azim-at/cafeBackend/repository"
	"github.com/tealeg/xlsx"
)

type AdminService struct {
	OrderRepo *repository.OrderRepository
}

func NewAdminService(orderRepo *repository.OrderRepository) *AdminService {
	return &AdminService{OrderRepo: orderRepo}
}

type DashboardSummary struct {
	TodayRevenue  int64    `json:"todayRevenue"`
	TodayOrders   int      `json:"todayOrders"`
	ActiveOrders  int64    `json:"activeOrders"`
	AvgOrderValue int64    `json:"avgOrderValue"`
	TopItem       *TopItem `json:"topItem"`
}

type TopItem struct {
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (s *AdminService) DashboardSummary(cafe *entity.Cafe, ident *Identity) (*DashboardSummary, error) {
	if err := requireOwner(cafe, ident); err != nil {
		return nil, err
	}

	now := time.Now()
	active, err := s.OrderRepo.CountByStatuses(cafe.ID, entity.ActiveOrderStatuses)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	todayOrders, err := s.OrderRepo.ListTodayNotCancelled(cafe.ID, dayStart(now), now)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	var revenue int64
	itemTotals := map[uint]*TopItem{}
	for _, o := range todayOrders {
		revenue += o.Total
		for _, it := range o.Items {
			if t, ok := itemTotals[it.MenuItemID]; ok {
				t.Quantity += it.Quantity
			} else {
				itemTotals[it.MenuItemID] = &TopItem{
					MenuItemID: it.MenuItemID,
					Name:       it.NameSnapshot,
					Quantity:   it.Quantity,
				}
			}
		}
	}

	var top *TopItem
	for _, t := range itemTotals {
		if top == nil || t.Quantity > top.Quantity {
			top = t
		}
	}

	out := &DashboardSummary{
		TodayRevenue: revenue,
		TodayOrders:  len(todayOrders),
		ActiveOrders: active,
		TopItem:      top,
	}
	if len(todayOrders) > 0 {
		out.AvgOrderValue = revenue / int64(len(todayOrders))
	}
	return out, nil
}

// statusFilter accepts any single recognized status or the pseudo-status
// "active" covering the four in-flight states.
func statusFilter(status string) ([]string, error) {
	if status == "" {
		return nil, nil
	}
	if status == "active" {
		return entity.ActiveOrderStatuses, nil
	}
	if !entity.ValidOrderStatus(status) {
		return nil, apperr.Validation("invalid status")
	}
	return []string{status}, nil
}

// rangeFilter understands "today", "yesterday" or a comma list of both.
func rangeFilter(rangeSpec string, now time.Time) (*time.Time, *time.Time, error) {
	if rangeSpec == "" {
		return nil, nil, nil
	}
	includesToday, includesYesterday := false, false
	for _, part := range strings.Split(rangeSpec, ",") {
		switch strings.TrimSpace(part) {
		case "":
		case "today":
			includesToday = true
		case "yesterday":
			includesYesterday = true
		default:
			return nil, nil, apperr.Validation("invalid range")
		}
	}
	if !includesToday && !includesYesterday {
		return nil, nil, nil
	}

	startToday := dayStart(now)
	startYesterday := startToday.AddDate(0, 0, -1)

	switch {
	case includesToday && includesYesterday:
		return &startYesterday, &now, nil
	case includesYesterday:
		return &startYesterday, &startToday, nil
	default:
		return &startToday, &now, nil
	}
}

type AdminOrdersIn struct {
	Status string
	Range  string
	Limit  int
}

func (s *AdminService) ListOrders(cafe *entity.Cafe, ident *Identity, in *AdminOrdersIn) ([]entity.Order, error) {
	if err := requireOwner(cafe, ident); err != nil {
		return nil, err
	}

	statuses, err := statusFilter(in.Status)
	if err != nil {
		return nil, err
	}
	from, to, err := rangeFilter(in.Range, time.Now())
	if err != nil {
		return nil, err
	}

	limit := in.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	out, err := s.OrderRepo.ListForAdmin(cafe.ID, repository.AdminListFilter{
		Statuses: statuses,
		From:     from,
		To:       to,
		Limit:    limit,
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

// ExportOrders renders the filtered order list as an xlsx workbook.
func (s *AdminService) ExportOrders(cafe *entity.Cafe, ident *Identity, in *AdminOrdersIn) (*xlsx.File, error) {
	orders, err := s.ListOrders(cafe, ident, in)
	if err != nil {
		return nil, err
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return nil, apperr.Internal(err)
	}

	header := sheet.AddRow()
	for _, h := range []string{"ID", "Created", "Type", "Status", "Customer", "Subtotal", "Delivery Fee", "Total", "Items"} {
		header.AddCell().SetString(h)
	}

	for _, o := range orders {
		customer := o.GuestEmail
		if o.User != nil {
			customer = o.User.Email
		}
		var lines []string
		for _, it := range o.Items {
			lines = append(lines, strconv.Itoa(it.Quantity)+"x "+it.NameSnapshot)
		}
		row := sheet.AddRow()
		row.AddCell().SetInt(int(o.ID))
		row.AddCell().SetString(o.CreatedAt.Format(time.RFC3339))
		row.AddCell().SetString(o.Type)
		row.AddCell().SetString(o.Status)
		row.AddCell().SetString(customer)
		row.AddCell().SetInt64(o.Subtotal)
		row.AddCell().SetInt64(o.DeliveryFee)
		row.AddCell().SetInt64(o.Total)
		row.AddCell().SetString(strings.Join(lines, ", "))
	}
	return file, nil
}
