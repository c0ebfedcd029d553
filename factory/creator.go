package factory

import "context"

// Creator declares the factory method. Concrete creators choose the product type.
type Creator interface {
	FactoryMethod() Product
}

// SomeOperation is the creator's business logic. It only knows Product, so the
// creator passed in decides which product it works with.
func SomeOperation(creator Creator) string {
	product := creator.FactoryMethod()
	return "Creator: The same creator's code has just worked with " + product.Operation()
}

// ConcreteCreator1 creates ConcreteProduct1.
type ConcreteCreator1 struct{}

func (ConcreteCreator1) FactoryMethod() Product {
	return ConcreteProduct1{}
}

// ConcreteCreator2 creates ConcreteProduct2.
type ConcreteCreator2 struct{}

func (ConcreteCreator2) FactoryMethod() Product {
	return ConcreteProduct2{}
}

// CreatorFactory adapts creator to Factory. The context is checked before the
// factory method runs.
func CreatorFactory(creator Creator) Factory[Product, struct{}] {
	return FactoryFunc[Product, struct{}](func(ctx context.Context, _ struct{}) (Product, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return creator.FactoryMethod(), nil
	})
}
