package repository

import "github.com/locvowork/decant_storefront/internal/domain"

const (
	imgCreedAventus = "/PerfumesPics/CreedAventus.jpg"
	imgMasculine    = imgCreedAventus
	imgDiorSauvage  = "/PerfumesPics/DSvg.jpg"
	imgBleuDeChanel = "/PerfumesPics/BDC.jpg"
	imgADGProfumo   = "/PerfumesPics/adprofumo.jpg"

	generatedImages = "https://slelguoygbfzlpylpxfs.supabase.co/storage/v1/object/public/project-uploads/82f38e4d-27dd-401f-943c-1365a30a9286/generated_images/"
	imgFeminine     = generatedImages + "elegant-feminine-perfume-bottle-rose-gol-68cc1353-20251208174947.jpg"
	imgOriental     = generatedImages + "oriental-oud-perfume-bottle-amber-gold-l-db04bf19-20251208174946.jpg"
	imgCitrus       = generatedImages + "fresh-citrus-perfume-bottle-crystal-clea-ae898cca-20251208174947.jpg"
	imgUnisex       = generatedImages + "unisex-niche-perfume-bottle-collection-m-d3f3e7b3-20251208174947.jpg"
	imgWoody        = generatedImages + "luxury-woody-perfume-bottle-dark-smoky-g-2a976770-20251208174947.jpg"
)

// staticCatalog is the built-in product list, in featured order.
var staticCatalog = []domain.Product{
	{
		ID:            "aventus",
		Name:          "Aventus",
		Brand:         "Creed",
		Price:         6500,
		OriginalPrice: 58000,
		Image:         imgCreedAventus,
		Images:        []string{imgMasculine, imgWoody, imgCitrus},
		Category:      domain.CategoryMasculine,
		Type:          domain.ScentFresh,
		Description:   "A prestigious fragrance combining pineapple, birch, and musk, celebrating power and success. Aventus has become the gold standard for modern masculine fragrances.",
		Notes: domain.Notes{
			Top:    []string{"Pineapple", "Bergamot", "Black Currant", "Apple"},
			Middle: []string{"Birch", "Patchouli", "Moroccan Jasmine", "Rose"},
			Base:   []string{"Musk", "Oak Moss", "Ambergris", "Vanilla"},
		},
		IsBestSeller: true,
		Longevity:    "8-12 hours",
		Sillage:      "Strong",
		Occasion:     []string{"Business", "Special Events", "Evening"},
	},
	{
		ID:            "baccarat-rouge-540",
		Name:          "Baccarat Rouge 540",
		Brand:         "Maison Francis Kurkdjian",
		Price:         7200,
		OriginalPrice: 45000,
		Image:         imgOriental,
		Images:        []string{imgOriental, imgFeminine},
		Category:      domain.CategoryUnisex,
		Type:          domain.ScentOriental,
		Description:   "An alchemy of saffron, amber wood, and fir resin creates a luminous and enchanting scent. A modern icon in the world of luxury fragrances.",
		Notes: domain.Notes{
			Top:    []string{"Saffron", "Jasmine"},
			Middle: []string{"Amberwood", "Maison Cedar"},
			Base:   []string{"Fir Resin", "Ambergris", "Cedar"},
		},
		IsBestSeller: true,
		Longevity:    "10-14 hours",
		Sillage:      "Moderate to Strong",
		Occasion:     []string{"Evening", "Special Events", "Date Night"},
	},
	{
		ID:            "lost-cherry",
		Name:          "Lost Cherry",
		Brand:         "Tom Ford",
		Price:         5800,
		OriginalPrice: 52000,
		Image:         imgFeminine,
		Images:        []string{imgFeminine, imgOriental},
		Category:      domain.CategoryUnisex,
		Type:          domain.ScentOriental,
		Description:   "Seductive cherry liqueur with hints of bitter almond and Turkish rose. Elegant and extremely sensual.",
		Notes: domain.Notes{
			Top:    []string{"Black Cherry", "Cherry Liqueur"},
			Middle: []string{"Bitter Almond", "Turkish Rose", "Jasmine Sambac"},
			Base:   []string{"Peru Balsam", "Roasted Tonka", "Sandalwood", "Vetiver"},
		},
		IsNew:     true,
		Longevity: "8-10 hours",
		Sillage:   "Moderate",
		Occasion:  []string{"Evening", "Date Night", "Special Events"},
	},
	{
		ID:            "oud-wood",
		Name:          "Oud Wood",
		Brand:         "Tom Ford",
		Price:         5200,
		OriginalPrice: 38000,
		Image:         imgWoody,
		Images:        []string{imgWoody, imgOriental},
		Category:      domain.CategoryUnisex,
		Type:          domain.ScentWoody,
		Description:   "A composition of exotic oud wood, sandalwood, and Szechuan pepper. Rich and smoky with a warm amber finish.",
		Notes: domain.Notes{
			Top:    []string{"Rosewood", "Chinese Pepper", "Cardamom"},
			Middle: []string{"Oud Wood", "Sandalwood", "Vetiver"},
			Base:   []string{"Tonka Bean", "Amber"},
		},
		IsBestSeller: true,
		Longevity:    "8-10 hours",
		Sillage:      "Moderate",
		Occasion:     []string{"Evening", "Business", "Formal Events"},
	},
	{
		ID:            "bleu-de-chanel",
		Name:          "Bleu de Chanel",
		Brand:         "Chanel",
		Price:         3800,
		OriginalPrice: 22000,
		Image:         imgBleuDeChanel,
		Images:        []string{imgMasculine, imgCitrus},
		Category:      domain.CategoryMasculine,
		Type:          domain.ScentWoody,
		Description:   "A woody aromatic fragrance revealing the spirit of a man who chooses his own destiny. Fresh, clean, and undeniably elegant.",
		Notes: domain.Notes{
			Top:    []string{"Citrus", "Mint", "Pink Pepper"},
			Middle: []string{"Grapefruit", "Dry Cedar", "Nutmeg"},
			Base:   []string{"Incense", "Ginger", "Sandalwood", "Patchouli", "Cedar", "Vetiver"},
		},
		IsBestSeller: true,
		Longevity:    "6-8 hours",
		Sillage:      "Moderate",
		Occasion:     []string{"Daily", "Business", "Casual"},
	},
	{
		ID:            "la-vie-est-belle",
		Name:          "La Vie Est Belle",
		Brand:         "Lancôme",
		Price:         3200,
		OriginalPrice: 21000,
		Image:         imgFeminine,
		Images:        []string{imgFeminine},
		Category:      domain.CategoryFeminine,
		Type:          domain.ScentFloral,
		Description:   "A floral iris fragrance expressing happiness and the joy of life. Sweet, elegant, and feminine.",
		Notes: domain.Notes{
			Top:    []string{"Blackcurrant", "Pear"},
			Middle: []string{"Iris", "Jasmine", "Orange Blossom"},
			Base:   []string{"Praline", "Vanilla", "Patchouli", "Tonka Bean"},
		},
		Longevity: "6-8 hours",
		Sillage:   "Moderate",
		Occasion:  []string{"Daily", "Romantic", "Special Events"},
	},
	{
		ID:            "sauvage",
		Name:          "Sauvage",
		Brand:         "Dior",
		Price:         3600,
		OriginalPrice: 20000,
		Image:         imgDiorSauvage,
		Images:        []string{imgDiorSauvage},
		Category:      domain.CategoryMasculine,
		Type:          domain.ScentFresh,
		Description:   "Pure and noble at once, inspired by wide open spaces. Fresh Calabrian bergamot, ambroxan, and Sichuan pepper.",
		Notes: domain.Notes{
			Top:    []string{"Calabrian Bergamot", "Pepper"},
			Middle: []string{"Lavender", "Pink Pepper", "Vetiver", "Patchouli", "Geranium"},
			Base:   []string{"Ambroxan", "Cedar", "Labdanum"},
		},
		IsBestSeller: true,
		Longevity:    "8-10 hours",
		Sillage:      "Strong",
		Occasion:     []string{"Daily", "Business", "Casual"},
	},
	{
		ID:            "black-opium",
		Name:          "Black Opium",
		Brand:         "Yves Saint Laurent",
		Price:         3400,
		OriginalPrice: 19000,
		Image:         imgOriental,
		Images:        []string{imgOriental, imgFeminine},
		Category:      domain.CategoryFeminine,
		Type:          domain.ScentOriental,
		Description:   "A seductive coffee floral fragrance with white flowers, vanilla, and a sensual touch of coffee.",
		Notes: domain.Notes{
			Top:    []string{"Pink Pepper", "Orange Blossom", "Pear"},
			Middle: []string{"Coffee", "Jasmine", "Bitter Almond", "Licorice"},
			Base:   []string{"Vanilla", "Patchouli", "Cedar", "Cashmere Wood"},
		},
		IsNew:     true,
		Longevity: "6-8 hours",
		Sillage:   "Moderate",
		Occasion:  []string{"Evening", "Date Night", "Parties"},
	},
	{
		ID:            "byredo-gypsy-water",
		Name:          "Gypsy Water",
		Brand:         "Byredo",
		Price:         4800,
		OriginalPrice: 38000,
		Image:         imgUnisex,
		Images:        []string{imgUnisex, imgWoody},
		Category:      domain.CategoryUnisex,
		Type:          domain.ScentWoody,
		Description:   "Inspired by the romantic gypsy lifestyle, a fragrance glorifying the idea of freedom and travel with fresh bergamot, pine, and vanilla.",
		Notes: domain.Notes{
			Top:    []string{"Bergamot", "Lemon", "Pepper", "Juniper Berries"},
			Middle: []string{"Incense", "Pine Needles", "Orris"},
			Base:   []string{"Amber", "Vanilla", "Sandalwood"},
		},
		IsNew:     true,
		Longevity: "6-8 hours",
		Sillage:   "Light to Moderate",
		Occasion:  []string{"Daily", "Casual", "Travel"},
	},
	{
		ID:            "le-labo-santal-33",
		Name:          "Santal 33",
		Brand:         "Le Labo",
		Price:         5500,
		OriginalPrice: 42000,
		Image:         imgUnisex,
		Images:        []string{imgUnisex, imgWoody},
		Category:      domain.CategoryUnisex,
		Type:          domain.ScentWoody,
		Description:   "An iconic open fire composition with Australian sandalwood, papyrus, and cedarwood. A global favorite.",
		Notes: domain.Notes{
			Top:    []string{"Cardamom", "Iris", "Violet"},
			Middle: []string{"Ambrox", "Australian Sandalwood", "Papyrus"},
			Base:   []string{"Cedarwood", "Leather", "Musk"},
		},
		IsBestSeller: true,
		Longevity:    "8-10 hours",
		Sillage:      "Moderate to Strong",
		Occasion:     []string{"Daily", "Business", "Casual"},
	},
	{
		ID:            "acqua-di-gio-profumo",
		Name:          "Acqua di Giò Profumo",
		Brand:         "Giorgio Armani",
		Price:         3500,
		OriginalPrice: 19000,
		Image:         imgADGProfumo,
		Images:        []string{imgADGProfumo},
		Category:      domain.CategoryMasculine,
		Type:          domain.ScentCitrus,
		Description:   "A sophisticated aquatic fragrance with a warm amber heart. The perfect balance between freshness and sensuality.",
		Notes: domain.Notes{
			Top:    []string{"Bergamot", "Sea Notes", "Geranium", "Mandarin Orange"},
			Middle: []string{"Rosemary", "Sage", "Amber"},
			Base:   []string{"Patchouli", "Incense", "Amber"},
		},
		Longevity: "8-10 hours",
		Sillage:   "Moderate",
		Occasion:  []string{"Summer", "Daily", "Beach"},
	},
	{
		ID:            "pdm-delina",
		Name:          "Delina",
		Brand:         "Parfums de Marly",
		Price:         5200,
		OriginalPrice: 42000,
		Image:         imgFeminine,
		Images:        []string{imgFeminine, imgOriental},
		Category:      domain.CategoryFeminine,
		Type:          domain.ScentFloral,
		Description:   "A sophisticated floral fragrance with Turkish rose, lily of the valley, and vanilla. Romantic and regal.",
		Notes: domain.Notes{
			Top:    []string{"Lychee", "Rhubarb", "Bergamot", "Nutmeg"},
			Middle: []string{"Turkish Rose", "Lily of the Valley", "Peony"},
			Base:   []string{"Cashmeran", "Vanilla", "White Musk", "Cedar"},
		},
		IsNew:     true,
		Longevity: "8-10 hours",
		Sillage:   "Moderate to Strong",
		Occasion:  []string{"Daytime", "Romantic", "Special Events"},
	},
}
