package service

import (
	"context"
	"sort"
	"strings"

	"github.com/cedricmorin1/Ordermanagement/internal/dto"
	"github.com/cedricmorin1/Ordermanagement/internal/model"
	"github.com/cedricmorin1/Ordermanagement/internal/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var thousand = decimal.NewFromInt(1000)

// SummaryService groups line items across orders by product so the
// counter can answer "how much of X is still to make today". Gram
// quantities fold into the product's kilogram group; the conversion is
// one-directional (never kg back to g).
//
// The bulk mutations are sequences of independent single-item writes.
// There is no transactional boundary across a group: a failure midway
// leaves the earlier writes in place.
type SummaryService interface {
	Summary(ctx context.Context, filter dto.OrderFilter) ([]dto.ProductGroupResponse, error)
	// MarkGroupComplete sets produced to the item's own (original,
	// non-normalized) quantity on every contributing item still short.
	MarkGroupComplete(ctx context.Context, sel dto.GroupSelector) (*dto.BulkUpdateResponse, error)
	// MarkGroupIncomplete resets produced to 0 on every contributing
	// item with nonzero produced.
	MarkGroupIncomplete(ctx context.Context, sel dto.GroupSelector) (*dto.BulkUpdateResponse, error)
	// SetGroupQuantity resets every contributing item to 0, then
	// greedily allocates the requested total (in the group's normalized
	// unit) across items in contribution order, first come first
	// served. Whatever exceeds the group's total quantity is dropped.
	SetGroupQuantity(ctx context.Context, req dto.SetGroupQuantityRequest) (*dto.BulkUpdateResponse, error)
}

type summaryService struct {
	orders repository.OrderRepository
}

func NewSummaryService(orders repository.OrderRepository) SummaryService {
	return &summaryService{orders: orders}
}

// contribution is one line item's share of a group, carrying both the
// normalized view and the original values needed to write back.
type contribution struct {
	dto.GroupContribution
	original model.LineItem
}

type productGroup struct {
	name          string
	unit          string
	totalQuantity decimal.Decimal
	totalProduced decimal.Decimal
	contributions []contribution
}

// normalizeQuantity applies the g→kg folding rule to a raw value.
func normalizeQuantity(value decimal.Decimal, unit string) (decimal.Decimal, string) {
	if unit == model.UnitGram {
		return value.Div(thousand), model.UnitKilogram
	}
	return value, unit
}

// denormalizeQuantity converts a normalized value back to the item's
// own unit for write-back.
func denormalizeQuantity(value decimal.Decimal, unit string) decimal.Decimal {
	if unit == model.UnitGram {
		return value.Mul(thousand)
	}
	return value
}

func groupKey(name, normalizedUnit string) string {
	return strings.ToLower(name) + "-" + normalizedUnit
}

// buildGroups folds every line item of every order into its group,
// preserving encounter order of both groups and contributions.
func buildGroups(orders []model.Order) []*productGroup {
	byKey := map[string]*productGroup{}
	var keys []string

	for _, o := range orders {
		for _, li := range o.Items {
			quantity, unit := normalizeQuantity(li.Quantity, li.Unit)
			produced, _ := normalizeQuantity(li.Produced, li.Unit)
			key := groupKey(li.Name, unit)

			g, ok := byKey[key]
			if !ok {
				g = &productGroup{
					name:          li.Name,
					unit:          unit,
					totalQuantity: decimal.Zero,
					totalProduced: decimal.Zero,
				}
				byKey[key] = g
				keys = append(keys, key)
			}
			g.totalQuantity = g.totalQuantity.Add(quantity)
			g.totalProduced = g.totalProduced.Add(produced)
			g.contributions = append(g.contributions, contribution{
				GroupContribution: dto.GroupContribution{
					OrderID:      o.ID,
					ItemID:       li.ID,
					CustomerName: o.CustomerName,
					Quantity:     quantity,
					Produced:     produced,
				},
				original: li,
			})
		}
	}

	groups := make([]*productGroup, 0, len(keys))
	for _, key := range keys {
		groups = append(groups, byKey[key])
	}
	return groups
}

// sortGroups orders incomplete groups before completed ones, then
// alphabetically by product name under French collation.
func sortGroups(groups []*productGroup) {
	coll := collate.New(language.French)
	sort.SliceStable(groups, func(i, j int) bool {
		iDone := groups[i].totalProduced.GreaterThanOrEqual(groups[i].totalQuantity)
		jDone := groups[j].totalProduced.GreaterThanOrEqual(groups[j].totalQuantity)
		if iDone != jDone {
			return !iDone
		}
		return coll.CompareString(groups[i].name, groups[j].name) < 0
	})
}

// BuildSummary computes the sorted product summary for a set of orders.
func BuildSummary(orders []model.Order) []dto.ProductGroupResponse {
	groups := buildGroups(orders)
	sortGroups(groups)

	result := make([]dto.ProductGroupResponse, 0, len(groups))
	for _, g := range groups {
		contribs := make([]dto.GroupContribution, 0, len(g.contributions))
		for _, c := range g.contributions {
			contribs = append(contribs, c.GroupContribution)
		}
		result = append(result, dto.ProductGroupResponse{
			Name:          g.name,
			Unit:          g.unit,
			TotalQuantity: g.totalQuantity,
			TotalProduced: g.totalProduced,
			Remaining:     g.totalQuantity.Sub(g.totalProduced),
			Progress:      percentage(g.totalProduced, g.totalQuantity),
			Completed:     g.totalProduced.GreaterThanOrEqual(g.totalQuantity),
			Orders:        contribs,
		})
	}
	return result
}

func (s *summaryService) Summary(ctx context.Context, filter dto.OrderFilter) ([]dto.ProductGroupResponse, error) {
	day, date, err := parseFilter(filter)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.List(ctx, day, date)
	if err != nil {
		return nil, err
	}
	return BuildSummary(orders), nil
}

// findGroup loads the filtered orders and picks the group matching the
// selector's lowercased name and normalized unit.
func (s *summaryService) findGroup(ctx context.Context, sel dto.GroupSelector) (*productGroup, error) {
	day, date, err := parseFilter(dto.OrderFilter{Day: sel.Day, Date: sel.Date})
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.List(ctx, day, date)
	if err != nil {
		return nil, err
	}
	key := groupKey(sel.Name, sel.Unit)
	for _, g := range buildGroups(orders) {
		if groupKey(g.name, g.unit) == key {
			return g, nil
		}
	}
	return nil, NotFound("Produit introuvable dans le récapitulatif")
}

func (s *summaryService) MarkGroupComplete(ctx context.Context, sel dto.GroupSelector) (*dto.BulkUpdateResponse, error) {
	group, err := s.findGroup(ctx, sel)
	if err != nil {
		return nil, err
	}
	resp := &dto.BulkUpdateResponse{}
	for _, c := range group.contributions {
		if c.original.Completed() {
			continue
		}
		// Write back the item's own quantity, not the normalized one.
		if err := s.orders.SetItemProduced(ctx, c.OrderID, c.ItemID, c.original.Quantity); err != nil {
			return resp, err
		}
		resp.Updated++
	}
	return resp, nil
}

func (s *summaryService) MarkGroupIncomplete(ctx context.Context, sel dto.GroupSelector) (*dto.BulkUpdateResponse, error) {
	group, err := s.findGroup(ctx, sel)
	if err != nil {
		return nil, err
	}
	resp := &dto.BulkUpdateResponse{}
	for _, c := range group.contributions {
		if c.original.Produced.IsZero() {
			continue
		}
		if err := s.orders.SetItemProduced(ctx, c.OrderID, c.ItemID, decimal.Zero); err != nil {
			return resp, err
		}
		resp.Updated++
	}
	return resp, nil
}

func (s *summaryService) SetGroupQuantity(ctx context.Context, req dto.SetGroupQuantityRequest) (*dto.BulkUpdateResponse, error) {
	group, err := s.findGroup(ctx, req.GroupSelector)
	if err != nil {
		return nil, err
	}

	resp := &dto.BulkUpdateResponse{}
	remaining := req.Quantity
	for _, c := range group.contributions {
		// Every item is reset, then absorbs its share in list order.
		// No fairness beyond first come first served; leftover beyond
		// the group total is dropped silently.
		share := decimal.Min(remaining, c.Quantity)
		if share.IsNegative() {
			share = decimal.Zero
		}
		remaining = remaining.Sub(share)

		produced := denormalizeQuantity(share, c.original.Unit)
		if err := s.orders.SetItemProduced(ctx, c.OrderID, c.ItemID, produced); err != nil {
			return resp, err
		}
		resp.Updated++
	}
	return resp, nil
}
