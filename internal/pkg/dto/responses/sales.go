package responses

import (
	"fmt"

	"github.com/goccy/go-json"
)

// MedicineSale is one aggregated revenue row. The service emits rows
// as two-element [name, revenue] pairs; an object form is accepted as
// well so the decoder survives a format change.
type MedicineSale struct {
	Name    string
	Revenue float64
}

func (m *MedicineSale) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err == nil {
		if len(pair) != 2 {
			return fmt.Errorf("medicine sale pair has %d elements, want 2", len(pair))
		}
		if err := json.Unmarshal(pair[0], &m.Name); err != nil {
			return err
		}
		return json.Unmarshal(pair[1], &m.Revenue)
	}

	var obj struct {
		Name    string  `json:"name"`
		Revenue float64 `json:"revenue"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	m.Name = obj.Name
	m.Revenue = obj.Revenue
	return nil
}

type SalesReport struct {
	TotalRevenue  float64        `json:"total_revenue"`
	MedicineSales []MedicineSale `json:"medicine_sales"`
}
