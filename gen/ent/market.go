// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/promowatch/promo-tracker/gen/ent/market"
)

// Market is the model entity for the Market schema.
type Market struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Handle holds the value of the "handle" field.
	Handle string `json:"handle,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Location holds the value of the "location" field.
	Location string `json:"location,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MarketQuery when eager-loading is set.
	Edges        MarketEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MarketEdges holds the relations/edges for other nodes in the graph.
type MarketEdges struct {
	// Promotions holds the value of the promotions edge.
	Promotions []*Promotion `json:"promotions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PromotionsOrErr returns the Promotions value or an error if the edge
// was not loaded in eager-loading.
func (e MarketEdges) PromotionsOrErr() ([]*Promotion, error) {
	if e.loadedTypes[0] {
		return e.Promotions, nil
	}
	return nil, &NotLoadedError{edge: "promotions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Market) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case market.FieldHandle, market.FieldName, market.FieldLocation:
			values[i] = new(sql.NullString)
		case market.FieldCreatedAt, market.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case market.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Market fields.
func (_m *Market) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case market.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case market.FieldHandle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field handle", values[i])
			} else if value.Valid {
				_m.Handle = value.String
			}
		case market.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case market.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = value.String
			}
		case market.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case market.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Market.
// This includes values selected through modifiers, order, etc.
func (_m *Market) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPromotions queries the "promotions" edge of the Market entity.
func (_m *Market) QueryPromotions() *PromotionQuery {
	return NewMarketClient(_m.config).QueryPromotions(_m)
}

// Update returns a builder for updating this Market.
// Note that you need to call Market.Unwrap() before calling this method if this Market
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Market) Update() *MarketUpdateOne {
	return NewMarketClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Market entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Market) Unwrap() *Market {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Market is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Market) String() string {
	var builder strings.Builder
	builder.WriteString("Market(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("handle=")
	builder.WriteString(_m.Handle)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("location=")
	builder.WriteString(_m.Location)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Markets is a parsable slice of Market.
type Markets []*Market
