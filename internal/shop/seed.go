package shop

// Data awal toko, ditulis sekali ke slot yang masih kosong saat Initialize.

var seedCategories = []Category{
	{ID: 1, Name: "Pria"},
	{ID: 2, Name: "Wanita"},
	{ID: 3, Name: "Unisex"},
}

var seedProducts = []Product{
	{
		ID: 1, Name: "Dior Sauvage", Brand: "Dior", CategoryID: 1,
		Description: "Parfum iconic dengan aroma segar dan maskulin. Cocok untuk pria modern.",
		Image:       "https://images.unsplash.com/photo-1594035910387-fea47794261f?w=400",
		Type:        TypeDecant,
		Prices:      map[string]int{"2": 35000, "5": 75000, "10": 140000},
		Quantity:    10,
	},
	{
		ID: 2, Name: "Chanel Bleu de Chanel", Brand: "Chanel", CategoryID: 1,
		Description: "Aroma woody dan aromatik yang elegan. Sangat cocok untuk acara formal.",
		Image:       "https://images.unsplash.com/photo-1592945403244-b3fbafd7f539?w=400",
		Type:        TypeDecant,
		Prices:      map[string]int{"2": 45000, "5": 95000, "10": 180000},
		Quantity:    8,
	},
	{
		ID: 3, Name: "Tom Ford Black Orchid", Brand: "Tom Ford", CategoryID: 2,
		Description: "Parfum mewah dengan notes floral dan truffle hitam. Mysteriouse dan memukau.",
		Image:       "https://images.unsplash.com/photo-1585232569525-f087bd9dae8e?w=400",
		Type:        TypeDecant,
		Prices:      map[string]int{"2": 55000, "5": 115000, "10": 215000},
		Quantity:    5,
	},
	{
		ID: 4, Name: "YSL Black Opium", Brand: "YSL", CategoryID: 2,
		Description: "Aroma manis dengan coffee notes. Glamorous dan feminin.",
		Image:       "https://images.unsplash.com/photo-1541643600914-78b084683601?w=400",
		Type:        TypeDecant,
		Prices:      map[string]int{"2": 40000, "5": 85000, "10": 160000},
		Quantity:    12,
	},
	{
		ID: 5, Name: "Creed Aventus", Brand: "Creed", CategoryID: 1,
		Description: "Legendary fragrance dengan notes fruity dan woody. Symbol of success.",
		Image:       "https://images.unsplash.com/photo-1595425970339-27414395c085?w=400",
		Type:        TypeDecant,
		Prices:      map[string]int{"2": 65000, "5": 135000, "10": 255000},
		Quantity:    3,
	},
	{
		ID: 6, Name: "Jo Malone Wood Sage & Sea Salt", Brand: "Jo Malone", CategoryID: 3,
		Description: "Fresh dan clean dengan notes sea salt dan sage. Sangat versatile.",
		Image:       "https://images.unsplash.com/photo-1595425970339-27414395c085?w=400",
		Type:        TypeDecant,
		Prices:      map[string]int{"2": 50000, "5": 105000, "10": 195000},
		Quantity:    7,
	},
	{
		ID: 7, Name: "Versace Dylan Blue", Brand: "Versace", CategoryID: 1,
		Description: "Parfum preloved kondisi 90% masih penuh. Aroma fresh citrus yang cocok untuk daily use.",
		Image:       "https://images.unsplash.com/photo-1592945403244-b3fbafd7f539?w=400",
		Type:        TypePreloved,
		Price:       350000,
		Quantity:    2,
	},
	{
		ID: 8, Name: "Gucci Bloom", Brand: "Gucci", CategoryID: 2,
		Description: "Parfum preloved kondisi 85% masih penuh. Aroma floral yang elegant dan feminine.",
		Image:       "https://images.unsplash.com/photo-1585232569525-f087bd9dae8e?w=400",
		Type:        TypePreloved,
		Price:       400000,
		Quantity:    1,
	},
	{
		ID: 9, Name: "Dior Fahrenheit", Brand: "Dior", CategoryID: 1,
		Description: "BNIB - Brand New In Box. Parfum klasik pria dengan signature floral notes.",
		Image:       "https://images.unsplash.com/photo-1594035910387-fea47794261f?w=400",
		Type:        TypeBNIB,
		Price:       1650000,
		Quantity:    4,
	},
	{
		ID: 10, Name: "Chanel Coco Mademoiselle", Brand: "Chanel", CategoryID: 2,
		Description: "BNIB - Brand New In Box. Eau de Parfum dengan notes orange, patchouli, dan rose.",
		Image:       "https://images.unsplash.com/photo-1541643600914-78b084683601?w=400",
		Type:        TypeBNIB,
		Price:       2100000,
		Quantity:    6,
	},
}

func defaultPaymentSettings() PaymentSettings {
	return PaymentSettings{
		Bank: []BankAccount{
			{ID: "bca", Name: "BCA", AccountNumber: "1234567890", AccountName: "Your.i Scent Official"},
			{ID: "mandiri", Name: "Mandiri", AccountNumber: "9876543210", AccountName: "Your.i Scent Official"},
		},
		Ewallet: []EwalletAccount{
			{ID: "dana", Name: "DANA", Number: "081234567890"},
			{ID: "ovo", Name: "OVO", Number: "081234567890"},
			{ID: "gopay", Name: "GoPay", Number: "081234567890"},
		},
		Qris: QrisSettings{
			Enabled:      true,
			MerchantName: "Your.i Scent",
		},
		WhatsappAdmin: "6281234567890",
	}
}
