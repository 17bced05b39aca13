// Package catalog 提供目录种子数据的写入
package catalog

import (
	"context"
	"fmt"

	"github.com/wyfcoding/motoparts/internal/catalog/domain"
)

// Seed 在商品表为空时写入初始分类、商品与评价数据
func Seed(
	ctx context.Context,
	categories domain.CategoryRepository,
	products domain.ProductRepository,
	testimonials domain.TestimonialRepository,
) error {
	count, err := products.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	seedCategories := []*domain.Category{
		{Name: "Engine & Transmission", Slug: "engine-transmission", Description: "Essential components for your motorcycle's engine and transmission", Image: "/assets/images/categories/engine.avif"},
		{Name: "Electrical & Electronics", Slug: "electrical-electronics", Description: "Electrical components and electronics for your motorcycle", Image: "/assets/images/categories/electrical.avif"},
		{Name: "Wheels & Tires", Slug: "wheels-tires", Description: "Premium wheels and tires for your motorcycle", Image: "/assets/images/categories/wheels.avif"},
		{Name: "Braking System", Slug: "braking-system", Description: "High-performance brake components for optimal stopping power", Image: "/assets/images/categories/brakes.avif"},
		{Name: "Body & Frame", Slug: "body-frame", Description: "Body parts and frame components for your motorcycle", Image: "/assets/images/categories/engine.avif"},
		{Name: "Lighting & Indicators", Slug: "lighting-indicators", Description: "Lighting systems and indicators for your motorcycle", Image: "/assets/images/categories/light.avif"},
		{Name: "Fuel & Air System", Slug: "fuel-air-system", Description: "Fuel and air system components for your motorcycle", Image: "/assets/images/categories/fuel.avif"},
		{Name: "Drive System", Slug: "drive-system", Description: "Drive system components for your motorcycle", Image: "/assets/images/categories/drive system.avif"},
		{Name: "Miscellaneous & Maintenance", Slug: "misc-maintenance", Description: "Miscellaneous parts and maintenance supplies for your motorcycle", Image: "/assets/images/categories/oil.avif"},
		{Name: "Suspension & Steering", Slug: "suspension-steering", Description: "Suspension and steering components for your motorcycle", Image: "/assets/images/categories/suspension.avif"},
	}
	for _, c := range seedCategories {
		if err := categories.Save(ctx, c); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", c.Slug, err)
		}
	}

	engine := seedCategories[0].ID
	electrical := seedCategories[1].ID

	seedProducts := []*domain.Product{
		{Name: "NGK C7HSA Sparkplug", Slug: "ngk-c7hsa-sparkplug", Description: "Standard spark plug for small motorcycles", Price: 110, ImageURL: "/assets/images/products/NGK C7HSA Sparkplug.jpg", CategoryID: engine, InStock: true, IsFeatured: true, Rating: 4.5, ReviewCount: 32},
		{Name: "NGK CPR8EA-9 Spark Plug", Slug: "ngk-cpr8ea-9-spark-plug", Description: "High-performance plug for enhanced ignition timing", Price: 180, OriginalPrice: ptr(200.0), ImageURL: "/assets/images/products/Kawasaki Fury CDI.jpg", CategoryID: engine, InStock: true, IsFeatured: true, IsBestseller: true, Rating: 4.7, ReviewCount: 45},
		{Name: "NGK CR7E Spark Plug", Slug: "ngk-cr7e-spark-plug", Description: "Durable spark plug for reliable engine starts", Price: 150, ImageURL: "/assets/images/products/Raider 150 Dual Band CDI.jpg", CategoryID: engine, InStock: true, IsFeatured: true, Rating: 4.3, ReviewCount: 28},
		{Name: "Rusi 125cc Piston Kit", Slug: "rusi-125cc-piston-kit", Description: "OEM replacement piston kit for Rusi 125cc", Price: 320, ImageURL: "/assets/images/products/Mio i 125 Piston Kit.jpg", CategoryID: engine, InStock: true, IsFeatured: true, IsNew: true, Rating: 4.6, ReviewCount: 19},
		{Name: "Mio i 125 Piston Kit", Slug: "mio-i-125-piston-kit", Description: "Quality piston kit for Mio i 125 engine", Price: 400, OriginalPrice: ptr(450.0), ImageURL: "/assets/images/products/Mio i 125 Piston Kit.jpg", CategoryID: engine, InStock: true, IsFeatured: true, IsBestseller: true, Rating: 4.8, ReviewCount: 37},
		{Name: "Raider 150 Piston Kit", Slug: "raider-150-piston-kit", Description: "High-performance piston for Raider 150", Price: 750, ImageURL: "/assets/images/products/Raider 150 Piston Kit.jpg", CategoryID: engine, InStock: true, IsFeatured: true, IsBestseller: true, Rating: 4.9, ReviewCount: 42},
		{Name: "Barako 175 Piston Kit", Slug: "barako-175-piston-kit", Description: "Durable piston kit for Barako 175 engine", Price: 600, ImageURL: "/assets/images/products/Barako 175 Piston Kit.jpg", CategoryID: engine, InStock: true, IsFeatured: true, IsNew: true, Rating: 4.5, ReviewCount: 25},
		{Name: "Wave 125 Clutch Assembly", Slug: "wave-125-clutch-assembly", Description: "Complete clutch set for Wave 125", Price: 480, OriginalPrice: ptr(520.0), ImageURL: "/assets/images/products/Fury 125 Clutch Assy.jpg", CategoryID: engine, InStock: true, IsFeatured: true, Rating: 4.4, ReviewCount: 31},
		{Name: "Sniper 150 Clutch Set", Slug: "sniper-150-clutch-set", Description: "Performance clutch kit for Sniper 150", Price: 750, ImageURL: "/assets/images/products/Sniper 150 Clutch Set.jpg", CategoryID: engine, InStock: true, IsFeatured: true, IsNew: true, IsBestseller: true, Rating: 4.7, ReviewCount: 28},
		{Name: "Fury 125 Clutch Assy", Slug: "fury-125-clutch-assy", Description: "Stock replacement clutch for Fury 125", Price: 450, ImageURL: "/assets/images/products/Fury 125 Clutch Assy.jpg", CategoryID: engine, InStock: true, IsFeatured: true, Rating: 4.2, ReviewCount: 17},
		{Name: "Rusi CDI Racing Blue Core", Slug: "rusi-cdi-racing-blue-core", Description: "Racing CDI for enhanced Rusi performance", Price: 350, OriginalPrice: ptr(400.0), ImageURL: "/assets/images/products/Rusi CDI Racing Blue Core.jpg", CategoryID: electrical, InStock: true, IsNew: true, Rating: 4.6, ReviewCount: 23},
		{Name: "Mio i 125 BRT CDI", Slug: "mio-i-125-brt-cdi", Description: "BRT CDI upgrade for Mio i 125 tuning", Price: 950, OriginalPrice: ptr(1050.0), ImageURL: "/assets/images/products/Mio i 125 BRT CDI.jpg", CategoryID: electrical, InStock: true, IsFeatured: true, IsNew: true, IsBestseller: true, Rating: 4.8, ReviewCount: 34},
		{Name: "Raider 150 Dual Band CDI", Slug: "raider-150-dual-band-cdi", Description: "Dual-band CDI for Raider 150 mods", Price: 1200, ImageURL: "/assets/images/products/Raider 150 Dual Band CDI.jpg", CategoryID: electrical, InStock: true, IsFeatured: true, IsBestseller: true, Rating: 4.9, ReviewCount: 41},
		{Name: "Kawasaki Fury CDI", Slug: "kawasaki-fury-cdi", Description: "OEM CDI for Kawasaki Fury", Price: 580, ImageURL: "/assets/images/products/Kawasaki Fury CDI.jpg", CategoryID: electrical, InStock: true, IsFeatured: true, Rating: 4.4, ReviewCount: 19},
		{Name: "Motolite MF 4L-BS", Slug: "motolite-mf-4l-bs", Description: "Maintenance-free 4L-BS battery by Motolite", Price: 980, ImageURL: "/assets/images/products/Motolite MF 4L-BS.jpg", CategoryID: electrical, InStock: true, IsFeatured: true, IsBestseller: true, Rating: 4.7, ReviewCount: 52},
	}
	for _, p := range seedProducts {
		if err := products.Save(ctx, p); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", p.Slug, err)
		}
	}

	seedTestimonials := []*domain.Testimonial{
		{Name: "Michael R.", Text: "Great quality parts at affordable prices. The NGK spark plugs I ordered worked perfectly in my Honda Wave.", Rating: 5, Avatar: "https://images.unsplash.com/photo-1557862921-37829c790f19?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", BikeModel: "Honda Wave 125"},
		{Name: "Jessica T.", Text: "The shipping was fast and the clutch assembly I purchased was exactly what I needed for my Yamaha Sniper.", Rating: 4, Avatar: "https://images.unsplash.com/photo-1580489944761-15a19d654956?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", BikeModel: "Yamaha Sniper 150"},
		{Name: "David L.", Text: "I've tried many different CDI units for my Raider 150, but this dual band CDI is by far the best. The performance improvement is noticeable.", Rating: 5, Avatar: "https://images.unsplash.com/photo-1552058544-f2b08422138a?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", BikeModel: "Suzuki Raider 150"},
		{Name: "Anna M.", Text: "The piston kit for my Mio was easy to install and runs smoothly. Will definitely shop here again.", Rating: 5, Avatar: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300", BikeModel: "Yamaha Mio i 125"},
	}
	for _, t := range seedTestimonials {
		if err := testimonials.Save(ctx, t); err != nil {
			return fmt.Errorf("failed to seed testimonial %q: %w", t.Name, err)
		}
	}

	return nil
}

func ptr(v float64) *float64 { return &v }
