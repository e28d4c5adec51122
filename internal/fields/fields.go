// Package fields holds the per-subcategory technical field schemas the admin
// form renders and validates. Values end up on Record.SpecificFields keyed by
// FieldSpec.Name.
package fields

import "sort"

// Field input kinds.
const (
	TypeText   = "text"
	TypeSelect = "select"
)

// FieldSpec describes one technical input for a subcategory.
type FieldSpec struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Placeholder string   `json:"placeholder,omitempty"`
	Unit        string   `json:"unit,omitempty"`
	Options     []string `json:"options,omitempty"`
}

// For returns the schema for a subcategory, or nil when it has no technical
// fields. The returned slice is shared; callers must not mutate it.
func For(subcategory string) []FieldSpec {
	return schemas[subcategory]
}

// Subcategories lists every subcategory that carries a schema, sorted.
func Subcategories() []string {
	out := make([]string, 0, len(schemas))
	for key := range schemas {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// Validate reports the names of select-typed values that are not among the
// schema's options. Text fields and unknown keys pass through untouched; the
// schema exists to guide input, not to reject free text.
func Validate(subcategory string, values map[string]string) []string {
	var bad []string
	for _, spec := range schemas[subcategory] {
		if spec.Type != TypeSelect {
			continue
		}
		v, ok := values[spec.Name]
		if !ok || v == "" {
			continue
		}
		found := false
		for _, opt := range spec.Options {
			if opt == v {
				found = true
				break
			}
		}
		if !found {
			bad = append(bad, spec.Name)
		}
	}
	return bad
}

var padFields = []FieldSpec{
	{Name: "pad_compound", Label: "Material/Composto", Type: TypeSelect, Options: []string{"Orgânico", "Semi-metálico", "Cerâmico", "Sinterizado"}},
	{Name: "pad_thickness", Label: "Espessura", Type: TypeText, Placeholder: "Ex: 7mm", Unit: "mm"},
	{Name: "pad_width", Label: "Largura", Type: TypeText, Placeholder: "Ex: 45mm", Unit: "mm"},
	{Name: "pad_height", Label: "Altura", Type: TypeText, Placeholder: "Ex: 50mm", Unit: "mm"},
}

var schemas = map[string][]FieldSpec{
	"Pneu": {
		{Name: "tire_width", Label: "Largura", Type: TypeText, Placeholder: "Ex: 110, 120, 130", Unit: "mm"},
		{Name: "tire_aspect", Label: "Perfil/Aspecto", Type: TypeText, Placeholder: "Ex: 70, 80, 90"},
		{Name: "tire_rim", Label: "Aro", Type: TypeText, Placeholder: "Ex: 17, 18, 19"},
		{Name: "tire_load", Label: "Índice de Carga", Type: TypeText, Placeholder: "Ex: 54, 58, 62"},
		{Name: "tire_speed", Label: "Índice de Velocidade", Type: TypeSelect, Options: []string{"H (210km/h)", "V (240km/h)", "W (270km/h)", "Y (300km/h)", "Z (+240km/h)"}},
		{Name: "tire_position", Label: "Posição", Type: TypeSelect, Options: []string{"Dianteiro", "Traseiro", "Universal"}},
		{Name: "tire_type", Label: "Tipo", Type: TypeSelect, Options: []string{"Tubeless", "Com Câmara", "Radial", "Diagonal"}},
	},
	"Câmara de Ar": {
		{Name: "tube_size", Label: "Tamanho", Type: TypeText, Placeholder: "Ex: 2.75-18, 3.00-18"},
		{Name: "tube_valve", Label: "Tipo de Válvula", Type: TypeSelect, Options: []string{"TR4", "TR6", "TR87", "TR13"}},
	},
	"Bateria": {
		{Name: "battery_voltage", Label: "Voltagem", Type: TypeSelect, Options: []string{"6V", "12V"}},
		{Name: "battery_capacity", Label: "Capacidade (Ah)", Type: TypeText, Placeholder: "Ex: 5, 7, 9"},
		{Name: "battery_cca", Label: "CCA (Corrente de Partida)", Type: TypeText, Placeholder: "Ex: 70, 100, 120"},
		{Name: "battery_type", Label: "Tipo", Type: TypeSelect, Options: []string{"Selada", "Convencional", "Gel", "Lítio", "AGM"}},
		{Name: "battery_dimensions", Label: "Dimensões (CxLxA)", Type: TypeText, Placeholder: "Ex: 120x70x130 mm"},
	},
	"Pastilha Dianteira": padFields,
	"Pastilha Traseira":  padFields,
	"Disco Dianteiro": {
		{Name: "disc_diameter", Label: "Diâmetro Externo", Type: TypeText, Placeholder: "Ex: 260, 280, 300", Unit: "mm"},
		{Name: "disc_thickness", Label: "Espessura", Type: TypeText, Placeholder: "Ex: 4.0, 4.5, 5.0", Unit: "mm"},
		{Name: "disc_holes", Label: "Quantidade de Furos", Type: TypeText, Placeholder: "Ex: 4, 5, 6"},
		{Name: "disc_type", Label: "Tipo", Type: TypeSelect, Options: []string{"Sólido", "Ventilado", "Ondulado", "Semi-flutuante", "Flutuante"}},
	},
	"Disco Traseiro": {
		{Name: "disc_diameter", Label: "Diâmetro Externo", Type: TypeText, Placeholder: "Ex: 220, 240, 260", Unit: "mm"},
		{Name: "disc_thickness", Label: "Espessura", Type: TypeText, Placeholder: "Ex: 3.5, 4.0, 4.5", Unit: "mm"},
		{Name: "disc_holes", Label: "Quantidade de Furos", Type: TypeText, Placeholder: "Ex: 3, 4, 5"},
		{Name: "disc_type", Label: "Tipo", Type: TypeSelect, Options: []string{"Sólido", "Ventilado", "Ondulado", "Semi-flutuante", "Flutuante"}},
	},
	"Vela de Ignição": {
		{Name: "spark_thread", Label: "Rosca", Type: TypeText, Placeholder: "Ex: M10, M12, M14"},
		{Name: "spark_reach", Label: "Alcance", Type: TypeText, Placeholder: "Ex: 12.7mm, 19mm", Unit: "mm"},
		{Name: "spark_gap", Label: "Abertura (Gap)", Type: TypeText, Placeholder: "Ex: 0.7, 0.8, 0.9", Unit: "mm"},
		{Name: "spark_heat", Label: "Grau Térmico", Type: TypeText, Placeholder: "Ex: 6, 7, 8"},
		{Name: "spark_electrode", Label: "Tipo de Eletrodo", Type: TypeSelect, Options: []string{"Cobre", "Platina", "Irídio", "Duplo Irídio"}},
	},
	"Corrente": {
		{Name: "chain_pitch", Label: "Passo", Type: TypeSelect, Options: []string{"420", "428", "520", "525", "530", "630"}},
		{Name: "chain_links", Label: "Número de Elos", Type: TypeText, Placeholder: "Ex: 100, 110, 120"},
		{Name: "chain_type", Label: "Tipo", Type: TypeSelect, Options: []string{"Standard", "O-Ring", "X-Ring", "Z-Ring"}},
		{Name: "chain_color", Label: "Cor", Type: TypeSelect, Options: []string{"Natural", "Dourada", "Preta", "Cromada"}},
	},
	"Kit Relação": {
		{Name: "chain_pitch", Label: "Passo da Corrente", Type: TypeSelect, Options: []string{"420", "428", "520", "525", "530", "630"}},
		{Name: "chain_links", Label: "Elos da Corrente", Type: TypeText, Placeholder: "Ex: 100, 110, 120"},
		{Name: "sprocket_front", Label: "Dentes Pinhão (Dianteiro)", Type: TypeText, Placeholder: "Ex: 14, 15, 16"},
		{Name: "sprocket_rear", Label: "Dentes Coroa (Traseira)", Type: TypeText, Placeholder: "Ex: 38, 40, 42"},
	},
	"Filtro de Óleo": {
		{Name: "filter_diameter", Label: "Diâmetro", Type: TypeText, Placeholder: "Ex: 68mm", Unit: "mm"},
		{Name: "filter_height", Label: "Altura", Type: TypeText, Placeholder: "Ex: 85mm", Unit: "mm"},
		{Name: "filter_thread", Label: "Rosca", Type: TypeText, Placeholder: "Ex: M20x1.5"},
		{Name: "filter_type", Label: "Tipo", Type: TypeSelect, Options: []string{"Cartucho", "Elemento Interno", "Spin-on"}},
	},
	"Filtro de Ar": {
		{Name: "filter_type", Label: "Tipo", Type: TypeSelect, Options: []string{"Papel", "Espuma", "Algodão (Performance)", "Híbrido"}},
		{Name: "filter_shape", Label: "Formato", Type: TypeSelect, Options: []string{"Retangular", "Circular", "Oval", "Irregular"}},
	},
	"Amortecedor Dianteiro": {
		{Name: "shock_travel", Label: "Curso", Type: TypeText, Placeholder: "Ex: 120mm, 130mm", Unit: "mm"},
		{Name: "shock_diameter", Label: "Diâmetro da Haste", Type: TypeText, Placeholder: "Ex: 41mm, 43mm", Unit: "mm"},
		{Name: "shock_type", Label: "Tipo", Type: TypeSelect, Options: []string{"Hidráulico", "Gás", "Ajustável", "Invertido"}},
		{Name: "shock_adjustments", Label: "Ajustes Disponíveis", Type: TypeText, Placeholder: "Ex: Compressão, Retorno, Pré-carga"},
	},
	"Amortecedor Traseiro": {
		{Name: "shock_length", Label: "Comprimento Olho a Olho", Type: TypeText, Placeholder: "Ex: 320mm, 350mm", Unit: "mm"},
		{Name: "shock_travel", Label: "Curso", Type: TypeText, Placeholder: "Ex: 50mm, 60mm", Unit: "mm"},
		{Name: "shock_type", Label: "Tipo", Type: TypeSelect, Options: []string{"Mono", "Twin", "Gás", "Hidráulico", "Ajustável"}},
		{Name: "shock_spring", Label: "Mola Incluída", Type: TypeSelect, Options: []string{"Sim", "Não", "Separada"}},
	},
	"Escapamento": {
		{Name: "exhaust_material", Label: "Material", Type: TypeSelect, Options: []string{"Aço Inox", "Aço Carbono", "Titânio", "Alumínio"}},
		{Name: "exhaust_type", Label: "Tipo", Type: TypeSelect, Options: []string{"Esportivo", "Original", "Slip-on", "Full System"}},
		{Name: "exhaust_diameter", Label: "Diâmetro de Saída", Type: TypeText, Placeholder: "Ex: 50mm, 60mm", Unit: "mm"},
		{Name: "exhaust_finish", Label: "Acabamento", Type: TypeSelect, Options: []string{"Polido", "Escovado", "Pintado", "Carbon Look"}},
	},
	"Óleo de Motor": {
		{Name: "oil_viscosity", Label: "Viscosidade", Type: TypeSelect, Options: []string{"10W-30", "10W-40", "15W-40", "20W-50", "5W-30", "5W-40"}},
		{Name: "oil_type", Label: "Tipo", Type: TypeSelect, Options: []string{"Mineral", "Semi-sintético", "Sintético", "100% Sintético"}},
		{Name: "oil_standard", Label: "Especificação", Type: TypeText, Placeholder: "Ex: API SL, JASO MA2"},
		{Name: "oil_volume", Label: "Volume", Type: TypeSelect, Options: []string{"1L", "4L", "5L", "20L"}},
	},
	"Óleo de Suspensão": {
		{Name: "oil_weight", Label: "Peso", Type: TypeSelect, Options: []string{"5W", "7.5W", "10W", "15W", "20W"}},
		{Name: "oil_volume", Label: "Volume", Type: TypeSelect, Options: []string{"250ml", "500ml", "1L"}},
	},
	"Guidão": {
		{Name: "handlebar_diameter", Label: "Diâmetro da Fixação", Type: TypeSelect, Options: []string{`22mm (7/8")`, `25.4mm (1")`, `28.6mm (1-1/8")`}},
		{Name: "handlebar_width", Label: "Largura Total", Type: TypeText, Placeholder: "Ex: 700mm, 780mm", Unit: "mm"},
		{Name: "handlebar_rise", Label: "Elevação", Type: TypeText, Placeholder: "Ex: 50mm, 80mm", Unit: "mm"},
		{Name: "handlebar_type", Label: "Estilo", Type: TypeSelect, Options: []string{"Street", "Sport", "Off-road", "Touring", "Drag"}},
	},
	"Retrovisor": {
		{Name: "mirror_thread", Label: "Rosca", Type: TypeSelect, Options: []string{"M10 Direita", "M10 Esquerda", "M8 Direita", "M8 Esquerda", "Universal"}},
		{Name: "mirror_position", Label: "Posição", Type: TypeSelect, Options: []string{"Esquerdo", "Direito", "Par"}},
		{Name: "mirror_type", Label: "Tipo", Type: TypeSelect, Options: []string{"Original", "Esportivo", "Dobrável", "Universal"}},
	},
	"Farol": {
		{Name: "light_type", Label: "Tipo de Lâmpada", Type: TypeSelect, Options: []string{"LED", "Halogênio", "Xenon", "Bi-LED"}},
		{Name: "light_power", Label: "Potência", Type: TypeText, Placeholder: "Ex: 35W, 55W", Unit: "W"},
		{Name: "light_voltage", Label: "Voltagem", Type: TypeSelect, Options: []string{"12V", "6V"}},
		{Name: "light_position", Label: "Posição", Type: TypeSelect, Options: []string{"Principal", "Auxiliar", "De Milha"}},
	},
	"Lanterna": {
		{Name: "light_type", Label: "Tipo", Type: TypeSelect, Options: []string{"LED", "Convencional"}},
		{Name: "light_functions", Label: "Funções", Type: TypeText, Placeholder: "Ex: Freio, Pisca, Placa"},
	},
	"Cilindro Mestre": {
		{Name: "cylinder_diameter", Label: "Diâmetro Interno", Type: TypeText, Placeholder: "Ex: 12.7mm, 14mm", Unit: "mm"},
		{Name: "cylinder_position", Label: "Posição", Type: TypeSelect, Options: []string{"Dianteiro", "Traseiro"}},
		{Name: "cylinder_lever", Label: "Tipo de Alavanca", Type: TypeSelect, Options: []string{"Curta", "Longa", "Ajustável"}},
	},
	"Pistão": {
		{Name: "piston_diameter", Label: "Diâmetro", Type: TypeText, Placeholder: "Ex: 52mm, 54mm", Unit: "mm"},
		{Name: "piston_oversize", Label: "Oversized", Type: TypeSelect, Options: []string{"STD (Standard)", "0.25mm", "0.50mm", "0.75mm", "1.00mm"}},
		{Name: "piston_rings", Label: "Anéis Inclusos", Type: TypeSelect, Options: []string{"Sim", "Não", "Separado"}},
	},
}
