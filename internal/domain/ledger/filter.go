// Package ledger contiene la lógica pura del libro de activos: el evaluador
// de filtros sobre las colecciones de eventos y el agregador de métricas del
// dashboard. Sin estado ni I/O; el almacén en internal/application/ledger es
// quien posee las colecciones.
package ledger

import "github.com/jhoicas/arsenal-api/internal/domain/entity"

// DateRange rango de fechas inclusivo en ambos extremos, formato ISO yyyy-MM-dd.
type DateRange struct {
	Start string
	End   string
}

// FilterOptions dimensiones opcionales para acotar una consulta. Un campo en
// cero significa "sin restricción en esa dimensión".
type FilterOptions struct {
	BaseID    string
	AssetType entity.AssetType
	DateRange *DateRange
}

// Event es lo que el evaluador necesita de cualquier evento del ledger.
// Lo implementan Purchase, Transfer, Assignment y Expenditure.
type Event interface {
	OccurredOn() string
	TypeOfAsset() entity.AssetType
	InvolvesBase(baseID string) bool
}

// Filter devuelve una copia con los eventos que cumplen todas las dimensiones
// presentes en opts. Función pura: no muta la entrada, misma entrada produce
// siempre la misma salida, y con opts vacías devuelve el conjunto completo.
// Las fechas son ISO yyyy-MM-dd, así que la comparación lexicográfica de
// strings equivale a la comparación de calendario.
func Filter[E Event](events []E, opts FilterOptions) []E {
	out := make([]E, 0, len(events))
	for _, ev := range events {
		if opts.BaseID != "" && !ev.InvolvesBase(opts.BaseID) {
			continue
		}
		if opts.AssetType != "" && ev.TypeOfAsset() != opts.AssetType {
			continue
		}
		if dr := opts.DateRange; dr != nil {
			if d := ev.OccurredOn(); d < dr.Start || d > dr.End {
				continue
			}
		}
		out = append(out, ev)
	}
	return out
}
