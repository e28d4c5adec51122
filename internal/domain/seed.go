package domain

// SeedRecords returns the built-in sample catalog used when neither store
// holds any data, so the storefront is never empty on first run.
func SeedRecords() []Record {
	return []Record{
		{ID: 1, Name: "Pastilha de Freio", Subcategory: "Pastilha Dianteira", Category: "freios", Brand: "honda", Code: "PF-001", Description: "Pastilha de freio de alta performance", Icon: "🛞", Applications: []string{"CG 150"}, Stock: 15, MinStock: 2, Status: StatusActive},
		{ID: 2, Name: "Vela de Ignição", Subcategory: "Vela de Ignição", Category: "motor", Brand: "universal", Code: "VI-002", Description: "Vela de ignição universal", Icon: "⚡", Applications: []string{"Universal"}, Stock: 30, MinStock: 5, Status: StatusActive},
		{ID: 3, Name: "Corrente de Transmissão", Subcategory: "Corrente", Category: "transmissao", Brand: "yamaha", Code: "CT-003", Description: "Corrente reforçada", Icon: "⛓️", Applications: []string{"XTZ 250"}, Stock: 8, MinStock: 2, Status: StatusActive},
		{ID: 4, Name: "Kit Relação", Subcategory: "Kit Relação", Category: "transmissao", Brand: "suzuki", Code: "KR-004", Description: "Kit completo com corrente e coroas", Icon: "⚙️", Applications: []string{"V-Strom 650"}, Stock: 6, MinStock: 2, Status: StatusActive},
		{ID: 5, Name: "Filtro de Óleo", Subcategory: "Filtro de Óleo", Category: "motor", Brand: "honda", Code: "FO-005", Description: "Filtro de óleo original", Icon: "🔧", Applications: []string{"CB 500"}, Stock: 20, MinStock: 4, Status: StatusActive},
		{ID: 6, Name: "Disco de Freio", Subcategory: "Disco Dianteiro", Category: "freios", Brand: "kawasaki", Code: "DF-006", Description: "Disco de freio ventilado", Icon: "💿", Applications: []string{"Ninja 400"}, Stock: 10, MinStock: 2, Status: StatusActive},
		{ID: 7, Name: "Amortecedor Dianteiro", Subcategory: "Amortecedor Dianteiro", Category: "suspensao", Brand: "yamaha", Code: "AD-007", Description: "Amortecedor regulável", Icon: "🔩", Applications: []string{"MT-03"}, Stock: 5, MinStock: 1, Status: StatusActive},
		{ID: 8, Name: "Bateria 12V", Subcategory: "Bateria", Category: "eletrica", Brand: "universal", Code: "BT-008", Description: "Bateria selada 12V", Icon: "🔋", Applications: []string{"Universal"}, Stock: 12, MinStock: 3, Status: StatusActive},
	}
}
