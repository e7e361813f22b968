package configs

import (
	"log"

	"github.com/alessander-dutra/DigitalMenuPro/entity"
)

// SeedStoreSettings creates the singleton settings row on first boot.
func SeedStoreSettings() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.StoreSettings{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	settings := entity.StoreSettings{
		StoreName:         "Sabor Digital",
		StorePhone:        "(11) 99999-9999",
		StoreEmail:        "contato@sabordigital.com",
		StoreAddress:      "Rua das Flores, 123 - Centro",
		IsOpen:            1,
		OpeningTime:       "08:00",
		ClosingTime:       "22:00",
		AllowPickup:       1,
		AllowCheckout:     1,
		AllowScheduling:   1,
		AllowReviews:      1,
		AllowOrderHistory: 1,
		DeliveryTime:      "30-45 min",
		PickupTime:        "15-20 min",
		DeliveryFee:       entity.MustMoney("5.00"),
		PaymentMethods:    "card,pix,cash",
	}
	return db.Create(&settings).Error
}

// SeedCategories inserts the default display categories.
func SeedCategories() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []entity.Category{
		{Name: "Entradas", Icon: "Cookie", MinItems: 0, MaxItems: 50, DisplayOrder: 1, IsActive: 1, DefaultPrinter: "none"},
		{Name: "Pratos Principais", Icon: "ChefHat", MinItems: 0, MaxItems: 100, DisplayOrder: 2, IsActive: 1, DefaultPrinter: "none"},
		{Name: "Sobremesas", Icon: "IceCream", MinItems: 0, MaxItems: 30, DisplayOrder: 3, IsActive: 1, DefaultPrinter: "none"},
		{Name: "Bebidas", Icon: "Coffee", MinItems: 0, MaxItems: 50, DisplayOrder: 4, IsActive: 1, DefaultPrinter: "none"},
	}
	for i := range defaults {
		if err := db.Create(&defaults[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedMenuItems loads the sample menu on an empty database.
func SeedMenuItems() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("menu already seeded, skipping")
		return nil
	}

	items := []entity.MenuItem{
		{Name: "Bruschetta de Tomate e Manjericão", Description: "Pão artesanal tostado com tomates frescos, manjericão e azeite extra virgem", Price: entity.MustMoney("18.90"), Category: "entradas", ImageURL: "https://images.unsplash.com/photo-1572695157366-5e585ab2b69f?w=800&h=600&fit=crop", Available: 1},
		{Name: "Salada Caesar Gourmet", Description: "Alface romana, croutons artesanais, parmesão e molho caesar especial", Price: entity.MustMoney("24.90"), Category: "entradas", ImageURL: "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=800&h=600&fit=crop", Available: 1},
		{Name: "Tábua de Antepastos", Description: "Seleção de queijos, embutidos, azeitonas e geleia artesanal", Price: entity.MustMoney("32.90"), Category: "entradas", ImageURL: "https://images.unsplash.com/photo-1504674900247-0877df9cc836?w=800&h=600&fit=crop", Available: 1},
		{Name: "Salmão Grelhado com Legumes", Description: "Filé de salmão grelhado, acompanha legumes salteados e molho de ervas", Price: entity.MustMoney("45.90"), Category: "principais", ImageURL: "https://images.unsplash.com/photo-1467003909585-2f8a72700288?w=800&h=600&fit=crop", Available: 1},
		{Name: "Bife Ancho Grelhado", Description: "Corte premium grelhado na brasa, acompanha batatas rústicas e salada", Price: entity.MustMoney("52.90"), Category: "principais", ImageURL: "https://images.unsplash.com/photo-1546833999-b9f581a1996d?w=800&h=600&fit=crop", Available: 1},
		{Name: "Peito de Frango ao Molho de Cogumelos", Description: "Peito de frango grelhado com molho cremoso de cogumelos e risotto", Price: entity.MustMoney("38.90"), Category: "principais", ImageURL: "https://images.unsplash.com/photo-1598515214211-89d3c73ae83b?w=800&h=600&fit=crop", Available: 1},
		{Name: "Spaghetti Carbonara", Description: "Massa fresca com molho cremoso, bacon, ovos e parmesão ralado", Price: entity.MustMoney("28.90"), Category: "massas", ImageURL: "https://images.unsplash.com/photo-1621996346565-e3dbc353d2e5?w=800&h=600&fit=crop", Available: 1},
		{Name: "Fettuccine Alfredo", Description: "Fettuccine ao molho branco cremoso com frango grelhado e brócolis", Price: entity.MustMoney("32.90"), Category: "massas", ImageURL: "https://images.unsplash.com/photo-1555949258-eb67b1ef0ceb?w=800&h=600&fit=crop", Available: 1},
		{Name: "Petit Gateau", Description: "Bolinho de chocolate quente com sorvete de baunilha e calda especial", Price: entity.MustMoney("16.90"), Category: "sobremesas", ImageURL: "https://images.unsplash.com/photo-1563805042-7684c019e1cb?w=800&h=600&fit=crop", Available: 1},
		{Name: "Tiramisu Clássico", Description: "Sobremesa italiana com camadas de mascarpone, café e cacau", Price: entity.MustMoney("14.90"), Category: "sobremesas", ImageURL: "https://images.unsplash.com/photo-1571877227200-a0d98ea607e9?w=800&h=600&fit=crop", Available: 1},
		{Name: "Vinho Tinto Reserva", Description: "Vinho tinto encorpado, ideal para acompanhar carnes", Price: entity.MustMoney("45.00"), Category: "bebidas", ImageURL: "https://images.unsplash.com/photo-1510812431401-41d2bd2722f3?w=800&h=600&fit=crop", Available: 1},
		{Name: "Suco Natural de Laranja", Description: "Suco de laranja fresco, espremido na hora", Price: entity.MustMoney("8.90"), Category: "bebidas", ImageURL: "https://images.unsplash.com/photo-1613478223719-2ab802602423?w=800&h=600&fit=crop", Available: 1},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			return err
		}
	}

	log.Println("sample menu seeded")
	return nil
}
