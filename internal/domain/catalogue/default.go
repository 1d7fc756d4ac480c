// internal/domain/catalogue/default.go
package catalogue

// defaultEntries mirrors the equipment and container types offered to clients.
// Capacities only apply to containers; residue describes what a container may carry.
var defaultEntries = []Entry{
	// Equipment
	{ID: "eq-poliguindaste", Kind: KindEquipment, Label: "Poliguindaste", Icon: "truck-flatbed"},
	{ID: "eq-munck", Kind: KindEquipment, Label: "Caminhão Munck", Icon: "truck-crane"},
	{ID: "eq-guindaste", Kind: KindEquipment, Label: "Guindaste", Icon: "crane"},
	{ID: "eq-retroescavadeira", Kind: KindEquipment, Label: "Retroescavadeira", Icon: "backhoe"},
	{ID: "eq-rolo-compactador", Kind: KindEquipment, Label: "Rolo Compactador", Icon: "roller"},

	// Containers
	{ID: "ct-cacamba-3", Kind: KindContainer, Label: "Caçamba Estacionária", Icon: "dumpster", Capacity: "3m³", Residue: "Entulho"},
	{ID: "ct-cacamba-4", Kind: KindContainer, Label: "Caçamba Estacionária", Icon: "dumpster", Capacity: "4m³", Residue: "Entulho"},
	{ID: "ct-cacamba-5", Kind: KindContainer, Label: "Caçamba Estacionária", Icon: "dumpster", Capacity: "5m³", Residue: "Entulho"},
	{ID: "ct-roll-on-15", Kind: KindContainer, Label: "Roll-on Roll-off", Icon: "container", Capacity: "15m³", Residue: "Resíduo industrial"},
	{ID: "ct-roll-on-30", Kind: KindContainer, Label: "Roll-on Roll-off", Icon: "container", Capacity: "30m³", Residue: "Resíduo industrial"},
}

// Default returns the built-in catalogue.
// The entry set is fixed at compile time, so construction cannot fail.
func Default() *Catalogue {
	c, err := New(defaultEntries)
	if err != nil {
		panic(err)
	}
	return c
}
