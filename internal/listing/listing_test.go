package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type widget struct {
	Name     string
	Category string
	Price    float64
}

var widgetSchema = Schema[widget]{
	SearchFields: []func(widget) string{
		func(w widget) string { return w.Name },
	},
	FilterFields: map[string]func(widget) string{
		"category": func(w widget) string { return w.Category },
	},
	TextSort: map[string]func(widget) string{
		"name": func(w widget) string { return w.Name },
	},
	NumericSort: map[string]func(widget) float64{
		"price": func(w widget) float64 { return w.Price },
	},
}

var widgets = []widget{
	{"Aurora Lamp", "lighting", 49.99},
	{"Beacon Lamp", "lighting", 19.99},
	{"Cedar Shelf", "furniture", 89.00},
	{"aurora mini", "lighting", 9.50},
}

func TestApplySearchIsCaseInsensitive(t *testing.T) {
	got := Apply(widgets, widgetSchema, Params{Search: "AURORA"})
	assert.Len(t, got, 2)
	assert.Equal(t, "Aurora Lamp", got[0].Name)
	assert.Equal(t, "aurora mini", got[1].Name)
}

func TestApplyFilterAllIsNoop(t *testing.T) {
	got := Apply(widgets, widgetSchema, Params{Filters: map[string]string{"category": All}})
	assert.Len(t, got, len(widgets))

	got = Apply(widgets, widgetSchema, Params{Filters: map[string]string{"category": "furniture"}})
	assert.Len(t, got, 1)
	assert.Equal(t, "Cedar Shelf", got[0].Name)
}

func TestApplyTextSort(t *testing.T) {
	got := Apply(widgets, widgetSchema, Params{SortBy: "name"})
	assert.Equal(t, "Aurora Lamp", got[0].Name)
	assert.Equal(t, "aurora mini", got[1].Name)
	assert.Equal(t, "Beacon Lamp", got[2].Name)

	got = Apply(widgets, widgetSchema, Params{SortBy: "name", Desc: true})
	assert.Equal(t, "Cedar Shelf", got[0].Name)
}

func TestApplyNumericSort(t *testing.T) {
	got := Apply(widgets, widgetSchema, Params{SortBy: "price"})
	assert.Equal(t, 9.50, got[0].Price)
	assert.Equal(t, 89.00, got[3].Price)

	got = Apply(widgets, widgetSchema, Params{SortBy: "price", Desc: true})
	assert.Equal(t, 89.00, got[0].Price)
}

func TestApplyUnknownSortKeepsOrder(t *testing.T) {
	got := Apply(widgets, widgetSchema, Params{SortBy: "bogus"})
	for i := range widgets {
		assert.Equal(t, widgets[i].Name, got[i].Name)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	before := widgets[0].Name
	_ = Apply(widgets, widgetSchema, Params{Search: "lamp", SortBy: "price", Desc: true})
	assert.Equal(t, before, widgets[0].Name)
}
