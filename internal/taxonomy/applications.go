package taxonomy

// Applications is the universal list of vehicle models offered in the admin
// form and the public filters. Pure reference data.
var Applications = []string{
	// Honda
	"CG 125", "CG 150", "CG 160", "CG Titan", "CG Start",
	"Titan 125", "Titan 150", "Titan 160", "Titan 99", "Titan 2000",
	"Fan 125", "Fan 150", "Fan 160",
	"Biz 100", "Biz 110i", "Biz 125",
	"Pop 100", "Pop 110i", "CB 250",
	"CB 300", "CB 500", "CB 600", "CB 650", "CB 1000",
	"CBR 600", "CBR 1000",
	"Bros 125", "Bros 150", "Bros 160",
	"XRE 190", "XRE 300",
	"NX 150", "NX 200", "NX 400",
	"NC 700", "NC 750",
	"PCX 150",
	"Shadow 600", "Shadow 750",

	// Yamaha
	"YBR 125", "YBR 150", "YBR Factor",
	"Factor 125", "Factor 150",
	"XTZ 125", "XTZ 150", "XTZ 250", "XTZ Crosser", "XTZ Lander",
	"Fazer 150", "Fazer 250", "Fazer 600",
	"MT-03", "MT-07", "MT-09", "MT-10",
	"YZ 125", "YZ 250", "YZ 450",
	"TTR 125", "TTR 230", "TTR 250",
	"Crypton 100", "Crypton 115",
	"FZ 150", "FZ 250",
	"R1", "R3", "R6",
	"Tenere 250", "Tenere 660", "Tenere 700",
	"Drag Star 650",
	"Neo 125", "Nmax 160",
	"Ténéré 250", "XT 225", "XT 600", "XT 660",

	// Suzuki
	"Intruder 125", "Intruder 150", "Intruder 250",
	"GSX-R 150", "GSX-R 750", "GSX-R 1000",
	"GSX-S 150", "GSX-S 750", "GSX-S 1000",
	"Bandit 650", "Bandit 1200", "Bandit 1250",
	"V-Strom 650", "V-Strom 1000",
	"Yes 125",
	"Hayabusa",
	"Boulevard",
	"Burgman 125", "Burgman 400",
	"DR 350", "DR 650", "DR 800",
	"Gixxer 150", "Gixxer 250",
	"Address 110",

	// Kawasaki
	"Ninja 250", "Ninja 300", "Ninja 400", "Ninja 650", "Ninja 1000", "Ninja ZX-6R", "Ninja ZX-10R",
	"Z300", "Z400", "Z650", "Z750", "Z900", "Z1000",
	"Versys 300", "Versys 650", "Versys 1000",
	"ER-6N", "ER-6F",
	"Vulcan 500", "Vulcan 650", "Vulcan 900",
	"KLX 150", "KLX 250", "KLX 450",
	"KX 125", "KX 250", "KX 450",
	"KLR 650",

	// Other popular makes
	"Brava Altino 150",
	"Dafra Apache 150", "Dafra Next 250", "Dafra Citycom 300", "Dafra Maxsym 400", "Dafra Roadwin 250",
	"Shineray XY 50", "Shineray XY 125", "Shineray XY 150", "Shineray XY 200", "Shineray XY 250",
	"Traxx JH 150", "Traxx JL 125", "Traxx Sky 125", "Traxx Star 50",
	"Sundown Max 125", "Sundown STX 200", "Sundown Future 125", "Sundown Web 100",
	"Kasinski Comet 150", "Kasinski Mirage 150", "Kasinski Soft 50",
	"Dafra Speed 150",

	// BMW
	"G 310 R", "G 310 GS", "R 1200 GS", "R 1250 GS", "GS 650", "GS 1200", "GS 800",
	// Triumph
	"Street Triple", "Tiger 800", "Bonneville T100", "Bonneville Speedmaster",
	// Harley-Davidson
	"Iron 883", "Forty-Eight", "Street 750", "Roadster", "Fat Boy",
	// Universal
	"Universal", "Todas as Marcas", "Compatível Múltiplas Marcas",
}
