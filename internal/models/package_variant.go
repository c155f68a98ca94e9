package models

// PackageDetails is the per-category shape of a package. Each category only
// carries the fields the public site renders for it; anything else is dropped
// when the record is built.
type PackageDetails interface {
	Category() Category
	Record() PackageRecord
}

type TopDestinationPackage struct {
	Title       string `json:"title" validate:"required"`
	ImageURL    string `json:"imageUrl" validate:"required,url"`
	Days        string `json:"days"`
	Price       string `json:"price"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

func (TopDestinationPackage) Category() Category { return CategoryTopDestinations }

func (p TopDestinationPackage) Record() PackageRecord {
	return PackageRecord{
		Title:       p.Title,
		Name:        p.Title,
		ImageURL:    p.ImageURL,
		Days:        p.Days,
		Duration:    p.Days,
		Price:       p.Price,
		Location:    p.Location,
		Description: p.Description,
	}
}

type BestDealPackage struct {
	Title       string `json:"title" validate:"required"`
	ImageURL    string `json:"imageUrl" validate:"required,url"`
	Price       string `json:"price" validate:"required"`
	Discount    string `json:"discount"`
	Days        string `json:"days"`
	Description string `json:"description"`
}

func (BestDealPackage) Category() Category { return CategoryBestDeals }

func (p BestDealPackage) Record() PackageRecord {
	return PackageRecord{
		Title:       p.Title,
		Name:        p.Title,
		ImageURL:    p.ImageURL,
		Price:       p.Price,
		Discount:    p.Discount,
		Days:        p.Days,
		Duration:    p.Days,
		Description: p.Description,
	}
}

type MostSearchedPackage struct {
	Title       string `json:"title" validate:"required"`
	ImageURL    string `json:"imageUrl" validate:"required,url"`
	Days        string `json:"days"`
	Price       string `json:"price"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

func (MostSearchedPackage) Category() Category { return CategoryMostSearched }

func (p MostSearchedPackage) Record() PackageRecord {
	return PackageRecord{
		Title:       p.Title,
		Name:        p.Title,
		ImageURL:    p.ImageURL,
		Days:        p.Days,
		Duration:    p.Days,
		Price:       p.Price,
		Location:    p.Location,
		Description: p.Description,
	}
}

type CuratedPackage struct {
	Title       string `json:"title" validate:"required"`
	ImageURL    string `json:"imageUrl" validate:"required,url"`
	Description string `json:"description"`
}

func (CuratedPackage) Category() Category { return CategoryCurated }

func (p CuratedPackage) Record() PackageRecord {
	return PackageRecord{
		Title:       p.Title,
		Name:        p.Title,
		ImageURL:    p.ImageURL,
		Description: p.Description,
	}
}

type UmrahPackage struct {
	Title       string   `json:"title" validate:"required"`
	ImageURL    string   `json:"imageUrl" validate:"required,url"`
	Price       string   `json:"price" validate:"required"`
	Duration    string   `json:"duration" validate:"required"`
	Location    string   `json:"location"`
	Rating      string   `json:"rating" validate:"omitempty,rating"`
	Features    []string `json:"features"`
	Description string   `json:"description"`
}

func (UmrahPackage) Category() Category { return CategoryUmrah }

func (p UmrahPackage) Record() PackageRecord {
	return PackageRecord{
		Title:       p.Title,
		Name:        p.Title,
		ImageURL:    p.ImageURL,
		Price:       p.Price,
		Duration:    p.Duration,
		Days:        p.Duration,
		Location:    p.Location,
		Rating:      p.Rating,
		Features:    p.Features,
		Description: p.Description,
	}
}
