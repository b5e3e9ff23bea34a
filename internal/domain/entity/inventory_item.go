package entity

// InventoryItem stock disponible de un producto (una fila por producto).
type InventoryItem struct {
	ProductID int64
	Quantity  int64
}

// CanFulfil indica si hay stock suficiente para la cantidad pedida.
func (i InventoryItem) CanFulfil(quantity int64) bool {
	return i.Quantity >= quantity
}
