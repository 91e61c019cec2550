package repository

// Factory describes access to the relational domain repositories.
type Factory interface {
	Products() ProductRepository
	Orders() OrderRepository
}
