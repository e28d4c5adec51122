package taxonomy

// Defaults returns the built-in category table. Keys are stable identifiers
// stored on records; labels and items are what admins edit.
func Defaults() Taxonomy {
	return Taxonomy{
		"freios": {
			Label: "Freios",
			Items: []string{"Pastilha Dianteira", "Pastilha Traseira", "Disco Dianteiro", "Disco Traseiro", "Cilindro Mestre", "Cilindro Escravo", "Óleo de Freio", "Alavanca de Freio", "Tambor", "Sapata de Freio"},
		},
		"motor": {
			Label: "Motor",
			Items: []string{"Vela de Ignição", "Filtro de Óleo", "Filtro de Ar", "Correia de Distribuição", "Corrente de Comando", "Pistão", "Junta", "Rolamento", "Escapamento", "Válvula", "Comando de Válvulas", "Corrente Primária"},
		},
		"transmissao": {
			Label: "Transmissão",
			Items: []string{"Corrente", "Kit Relação", "Coroa", "Pinhão", "Embreagem", "Cabo de Embreagem", "Disco de Embreagem", "Óleo de Câmbio", "Clutch", "Eixo Secundário"},
		},
		"suspensao": {
			Label: "Suspensão",
			Items: []string{"Amortecedor Dianteiro", "Amortecedor Traseiro", "Mola", "Braço de Suspensão", "Batente", "Óleo de Suspensão", "Garfo Dianteiro", "Bieleta", "Elo de Corrente"},
		},
		"eletrica": {
			Label: "Elétrica",
			Items: []string{"Bateria", "Alternador", "Starter", "Farol", "Lanterna", "Vela de Ignição", "CDI", "Bobina", "Sensor", "Rele", "Chicote Elétrico", "Regulador de Voltagem"},
		},
		"carroceria": {
			Label: "Carroceria",
			Items: []string{"Guidão", "Retrovisor", "Carenagem", "Pneu", "Câmara de Ar", "Alavanca", "Banco", "Grip", "Maçaneta", "Trava", "Protetor Motor", "Sabot"},
		},
		"acessorios": {
			Label: "Acessórios",
			Items: []string{"Corrente Decorativa", "Protetores", "Malas", "Bolsas", "Suporte de Mala", "Bagageiro", "Fairing", "Defensor"},
		},
		"cabos": {
			Label: "Cabos",
			Items: []string{"Cabo de Acelerador", "Cabo de Velocímetro", "Cabo de Clutch", "Cabo de Freio", "Cabo de Tanquete", "Mangueira de Freio", "Mangueira Combustível"},
		},
		"carburador_injecao": {
			Label: "Carburador / Injeção",
			Items: []string{"Carburador", "Injector", "Corpo de Borboleta", "Válvula Injetora", "Sensor de Oxigênio", "Tubo Admissão"},
		},
		"chassis": {
			Label: "Chassi",
			Items: []string{"Quadro", "Polia", "Suportes", "Fixadores", "Amortecedor de Vibração", "Eixo da Roda"},
		},
		"ferramentas": {
			Label: "Ferramentas / Equipamentos",
			Items: []string{"Chave de Roda", "Chave de Fenda", "Jogo de Ferramentas", "Compressor", "Macaco", "Elástico de Carga"},
		},
		"fixacao": {
			Label: "Fixação",
			Items: []string{"Parafuso", "Arruela", "Porca", "Rebite", "Presilha", "Abraçadeira", "Corrente de Carga"},
		},
		"roda": {
			Label: "Roda",
			Items: []string{"Roda Dianteira", "Roda Traseira", "Aros", "Cubos", "Raios", "Travamento de Roda"},
		},
	}
}

// BuiltinBrands is the shipped brand list; the registry extends it with
// custom brands and subtracts explicitly removed ones.
func BuiltinBrands() []string {
	return []string{
		"cpl", "cobreq", "ngk", "bosch", "brembo", "fram", "michelin", "pirelli",
		"continental", "bridgestone", "goodyear", "dunlop", "radiator", "yuasa",
		"ac delco", "iridium", "motorcraft", "magnum",
		"honda", "yamaha", "suzuki", "kawasaki", "universal",
	}
}
