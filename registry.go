package portfolio

import (
	"fmt"
	"sort"
)

// Registry owns every open lot of the session, partitioned by asset class,
// with lookup indexes by symbol and by full instrument name.
//
// Invariant: a symbol appears in the class index iff at least one open lot
// for that symbol exists in one of the class collections, and the name
// indexes always mirror the class index.
type Registry struct {
	equity lots
	crypto lots

	classBySymbol map[string]AssetClass
	nameBySymbol  map[string]string
	symbolByName  map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		classBySymbol: make(map[string]AssetClass),
		nameBySymbol:  make(map[string]string),
		symbolByName:  make(map[string]string),
	}
}

// classLots returns the collection holding lots of the given class.
func (r *Registry) classLots(c AssetClass) *lots {
	if c == Crypto {
		return &r.crypto
	}
	return &r.equity
}

// ClassOf returns the asset class a held symbol is routed to.
func (r *Registry) ClassOf(symbol string) (AssetClass, error) {
	c, ok := r.classBySymbol[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
	return c, nil
}

// Holds reports whether at least one open lot exists for the symbol.
func (r *Registry) Holds(symbol string) bool {
	_, ok := r.classBySymbol[symbol]
	return ok
}

// FullName returns the display name recorded for a held symbol.
func (r *Registry) FullName(symbol string) (string, error) {
	name, ok := r.nameBySymbol[symbol]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
	return name, nil
}

// LotsFor returns all open lots for the symbol, in whichever class holds it.
func (r *Registry) LotsFor(symbol string) ([]*Lot, error) {
	c, err := r.ClassOf(symbol)
	if err != nil {
		return nil, err
	}
	var held lots
	for _, lot := range *r.classLots(c) {
		if lot.Symbol == symbol {
			held = append(held, lot)
		}
	}
	return held, nil
}

// AddLot inserts a lot into the collection matching its class and indexes
// the symbol and full name if they are new.
func (r *Registry) AddLot(lot *Lot) {
	col := r.classLots(lot.Class)
	*col = append(*col, lot)

	if _, ok := r.classBySymbol[lot.Symbol]; !ok {
		r.classBySymbol[lot.Symbol] = lot.Class
	}
	if _, ok := r.nameBySymbol[lot.Symbol]; !ok {
		r.nameBySymbol[lot.Symbol] = lot.FullName
		r.symbolByName[lot.FullName] = lot.Symbol
	}
}

// ShrinkLot reduces an open lot by delta. The caller guarantees delta is
// positive and strictly below the lot quantity.
func (r *Registry) ShrinkLot(lot *Lot, delta Quantity) {
	lot.Quantity = lot.Quantity.Sub(delta)
}

// RemoveLot drops a fully-disposed lot. When the symbol's last lot goes,
// the symbol is purged from every index.
func (r *Registry) RemoveLot(lot *Lot) {
	col := r.classLots(lot.Class)
	for i, held := range *col {
		if held == lot {
			*col = append((*col)[:i], (*col)[i+1:]...)
			break
		}
	}
	if remaining, err := r.LotsFor(lot.Symbol); err == nil && len(remaining) == 0 {
		r.purge(lot.Symbol)
	}
}

// purge drops a symbol from the class and name indexes.
func (r *Registry) purge(symbol string) {
	delete(r.classBySymbol, symbol)
	if name, ok := r.nameBySymbol[symbol]; ok {
		delete(r.symbolByName, name)
		delete(r.nameBySymbol, symbol)
	}
}

// Symbols returns every held symbol in lexical order.
func (r *Registry) Symbols() []string {
	symbols := make([]string, 0, len(r.classBySymbol))
	for s := range r.classBySymbol {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}

// SymbolsByClass returns held symbols of one class, in lexical order.
func (r *Registry) SymbolsByClass(c AssetClass) []string {
	var symbols []string
	for s, sc := range r.classBySymbol {
		if sc == c {
			symbols = append(symbols, s)
		}
	}
	sort.Strings(symbols)
	return symbols
}

// TotalQuantity sums open quantity across every lot of the symbol.
// A symbol with no open lots totals zero.
func (r *Registry) TotalQuantity(symbol string) Quantity {
	held, err := r.LotsFor(symbol)
	if err != nil {
		return Quantity{}
	}
	return lots(held).totalQuantity()
}

// invariant verifies index consistency against the live lot set. Used by
// tests only.
func (r *Registry) invariant() error {
	open := make(map[string]AssetClass)
	for _, lot := range r.equity {
		open[lot.Symbol] = Equity
	}
	for _, lot := range r.crypto {
		open[lot.Symbol] = Crypto
	}
	for s, c := range open {
		if rc, ok := r.classBySymbol[s]; !ok || rc != c {
			return fmt.Errorf("symbol %q has open lots but bad class index", s)
		}
		name, ok := r.nameBySymbol[s]
		if !ok {
			return fmt.Errorf("symbol %q has open lots but no name index", s)
		}
		if r.symbolByName[name] != s {
			return fmt.Errorf("name %q does not map back to symbol %q", name, s)
		}
	}
	for s := range r.classBySymbol {
		if _, ok := open[s]; !ok {
			return fmt.Errorf("symbol %q is indexed but has no open lots", s)
		}
	}
	if len(r.nameBySymbol) != len(r.classBySymbol) || len(r.symbolByName) != len(r.classBySymbol) {
		return fmt.Errorf("index sizes diverge: class=%d names=%d symbols=%d",
			len(r.classBySymbol), len(r.nameBySymbol), len(r.symbolByName))
	}
	return nil
}
