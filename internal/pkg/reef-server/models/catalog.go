package models

// Product is a catalog entry a user can order. Its answers carry the
// product-level provisioning configuration (data center, os, template).
type Product struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Name          string    `json:"name" bson:"name"`
	Description   string    `json:"description" bson:"description,omitempty"`
	ProductTypeID string    `json:"product_type_id" bson:"product_type_id,omitempty"`
	ProviderID    string    `json:"provider_id" bson:"provider_id"`
	Retired       bool      `json:"retired" bson:"retired,omitempty"`
	Answers       AnswerSet `json:"answers" bson:"answers,omitempty"`
}

// ProductType categorizes products (vm, storage, ...).
type ProductType struct {
	ID   string `json:"id" bson:"_id,omitempty"`
	Name string `json:"name" bson:"name"`
}

// Provider represents the backing infrastructure provider. Its answers carry
// the orchestration engine connection credentials.
type Provider struct {
	ID      string    `json:"id" bson:"_id,omitempty"`
	Name    string    `json:"name" bson:"name"`
	Answers AnswerSet `json:"answers" bson:"answers,omitempty"`
}
