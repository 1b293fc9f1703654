package models

// ListRequest carries the shared paging parameters.
type ListRequest struct {
	Page int `query:"page" default:"1" validate:"gte=1"`
	Size int `query:"size" default:"50" validate:"gte=1,lte=500"`
}

// Offset converts the 1-based page into a slice offset.
func (r ListRequest) Offset() int { return (r.Page - 1) * r.Size }

// IDRequest binds a path id.
type IDRequest struct {
	ID string `param:"id" validate:"required"`
}

// TradeListRequest filters and pages the trade collection. From and To are
// inclusive ISO date bounds on the trade date.
type TradeListRequest struct {
	ListRequest
	Politician string `query:"politician"`
	Issuer     string `query:"issuer"`
	Sector     string `query:"sector"`
	From       string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To         string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// CommitteeListRequest optionally narrows committees to one chamber.
type CommitteeListRequest struct {
	Chamber string `query:"chamber" validate:"omitempty,oneof=house senate joint"`
}

// StateListRequest picks the ordering of the state list.
type StateListRequest struct {
	Sort string `query:"sort" default:"name" validate:"oneof=name trades politicians"`
}
