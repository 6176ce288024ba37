package client

import (
	"context"

	"github.com/hammem/monarchmoney/schema"
)

// TransactionCategories returns every category configured in the household.
func (c *Client) TransactionCategories(ctx context.Context) ([]schema.Category, error) {
	result, err := query[schema.CategoriesResult](ctx, c, "GetCategories", queryGetCategories, nil)
	if err != nil {
		return nil, err
	}
	return result.Categories, nil
}

// TransactionCategoryGroups returns the category groups.
func (c *Client) TransactionCategoryGroups(ctx context.Context) ([]schema.CategoryGroup, error) {
	result, err := query[schema.CategoryGroupsResult](ctx, c, "ManageGetCategoryGroups", queryGetCategoryGroups, nil)
	if err != nil {
		return nil, err
	}
	return result.CategoryGroups, nil
}

// CreateCategoryInput describes a new transaction category.
type CreateCategoryInput struct {
	GroupID string
	Name    string
	Icon    string
}

type createCategoryResult struct {
	CreateCategory struct {
		Category *struct {
			ID string `json:"id"`
		} `json:"category"`
		Errors []schema.PayloadError `json:"errors"`
	} `json:"createCategory"`
}

// CreateTransactionCategory creates a category and returns its id. The icon
// defaults to a neutral glyph when unset.
func (c *Client) CreateTransactionCategory(ctx context.Context, input CreateCategoryInput) (string, error) {
	const operation = "Web_CreateCategory"
	icon := input.Icon
	if icon == "" {
		icon = "❓"
	}
	variables := map[string]any{
		"input": map[string]any{
			"group": input.GroupID,
			"name":  input.Name,
			"icon":  icon,
		},
	}
	result, err := query[createCategoryResult](ctx, c, operation, mutationCreateCategory, variables)
	if err != nil {
		return "", err
	}
	if err = payloadError(operation, result.CreateCategory.Errors); err != nil {
		return "", err
	}
	if result.CreateCategory.Category == nil {
		return "", schema.NewOperationError(operation, "no category returned")
	}
	return result.CreateCategory.Category.ID, nil
}

type deleteCategoryResult struct {
	DeleteCategory struct {
		Deleted bool                  `json:"deleted"`
		Errors  []schema.PayloadError `json:"errors"`
	} `json:"deleteCategory"`
}

// DeleteTransactionCategory deletes a category; existing transactions are
// reassigned by the remote when moveToCategoryID is set.
func (c *Client) DeleteTransactionCategory(ctx context.Context, categoryID string, moveToCategoryID *string) error {
	const operation = "Web_DeleteCategory"
	variables := map[string]any{"id": categoryID}
	if moveToCategoryID != nil {
		variables["moveToCategoryId"] = *moveToCategoryID
	}
	result, err := query[deleteCategoryResult](ctx, c, operation, mutationDeleteCategory, variables)
	if err != nil {
		return err
	}
	if err = payloadError(operation, result.DeleteCategory.Errors); err != nil {
		return err
	}
	if !result.DeleteCategory.Deleted {
		return schema.NewOperationError(operation, "category was not deleted")
	}
	return nil
}

// DeleteTransactionCategories deletes several categories, returning the
// first failure alongside per-category outcomes.
func (c *Client) DeleteTransactionCategories(ctx context.Context, categoryIDs []string) []error {
	results := make([]error, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		results = append(results, c.DeleteTransactionCategory(ctx, id, nil))
	}
	return results
}

// TransactionTags returns the household's transaction tags.
func (c *Client) TransactionTags(ctx context.Context) ([]schema.Tag, error) {
	result, err := query[schema.TagsResult](ctx, c, "GetHouseholdTransactionTags", queryGetTags, nil)
	if err != nil {
		return nil, err
	}
	return result.HouseholdTransactionTags, nil
}

type createTagResult struct {
	CreateTransactionTag struct {
		Tag    *schema.Tag           `json:"tag"`
		Errors []schema.PayloadError `json:"errors"`
	} `json:"createTransactionTag"`
}

// CreateTransactionTag creates a tag with the given name and color.
func (c *Client) CreateTransactionTag(ctx context.Context, name, color string) (*schema.Tag, error) {
	const operation = "Common_CreateTransactionTag"
	result, err := query[createTagResult](ctx, c, operation, mutationCreateTag,
		map[string]any{"name": name, "color": color})
	if err != nil {
		return nil, err
	}
	if err = payloadError(operation, result.CreateTransactionTag.Errors); err != nil {
		return nil, err
	}
	if result.CreateTransactionTag.Tag == nil {
		return nil, schema.NewOperationError(operation, "no tag returned")
	}
	return result.CreateTransactionTag.Tag, nil
}

type setTagsResult struct {
	SetTransactionTags struct {
		Errors []schema.PayloadError `json:"errors"`
	} `json:"setTransactionTags"`
}

// SetTransactionTags replaces the tag set of a transaction. An empty tagIDs
// clears all tags.
func (c *Client) SetTransactionTags(ctx context.Context, transactionID string, tagIDs []string) error {
	const operation = "Web_SetTransactionTags"
	if tagIDs == nil {
		tagIDs = []string{}
	}
	variables := map[string]any{
		"input": map[string]any{"transactionId": transactionID, "tagIds": tagIDs},
	}
	result, err := query[setTagsResult](ctx, c, operation, mutationSetTransactionTags, variables)
	if err != nil {
		return err
	}
	return payloadError(operation, result.SetTransactionTags.Errors)
}
