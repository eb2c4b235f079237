package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arambha/showroom/internal/errmsg"
	"github.com/arambha/showroom/internal/inquiry"
	"github.com/arambha/showroom/internal/store"
)

// productFlags are the editable product fields given on the command line.
type productFlags struct {
	name        string
	description string
	price       int64
	image       string
}

func (f *productFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.description, "description", "d", "", "product description")
	cmd.Flags().Int64VarP(&f.price, "price", "p", 0, "price in rupees (0 means price on request)")
	cmd.Flags().StringVarP(&f.image, "image", "i", "", "path of a JPEG or PNG image to upload")
}

func (c *cli) productCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage catalog products",
	}

	var addFlags productFlags
	add := &cobra.Command{
		Use:   "add [category-id] [name]",
		Short: "Add a product to a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addFlags.name = args[1]
			return c.productAdd(cmd, args[0], addFlags)
		},
	}
	addFlags.register(add)

	var updateFlags productFlags
	update := &cobra.Command{
		Use:   "update [id]",
		Short: "Change a product's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.productUpdate(cmd, args[0], updateFlags)
		},
	}
	updateFlags.register(update)
	update.Flags().StringVarP(&updateFlags.name, "name", "n", "", "product name")

	cmd.AddCommand(
		add,
		&cobra.Command{
			Use:   "list [category-id]",
			Short: "List a category's products",
			Args:  cobra.ExactArgs(1),
			RunE:  c.productList,
		},
		update,
		&cobra.Command{
			Use:   "rm [id]",
			Short: "Delete a product",
			Args:  cobra.ExactArgs(1),
			RunE:  c.productRemove,
		},
	)
	return cmd
}

// uploadImage stores src under the category's folder and returns its URL.
func (c *cli) uploadImage(st *store.Store, categoryID, src string) (string, error) {
	cat, err := st.GetCategory(categoryID)
	if err != nil {
		return "", err
	}
	obj, err := c.media().Put(string(cat.Collection), cat.Slug, src)
	if err != nil {
		return "", err
	}
	c.logger.Debug("image stored", zap.String("path", obj.Path), zap.String("thumbnail", obj.ThumbPath))
	return obj.URL, nil
}

func (c *cli) productAdd(cmd *cobra.Command, categoryID string, f productFlags) error {
	st, err := c.openStore()
	if err != nil {
		return c.fail(errmsg.OpInitialize, "", err)
	}
	defer st.Close()

	in := store.ProductInput{Name: f.name, Description: f.description, Price: f.price}
	if f.image != "" {
		if in.ImageURL, err = c.uploadImage(st, categoryID, f.image); err != nil {
			return c.fail(errmsg.OpImageStore, f.image, err)
		}
	}

	p, err := st.CreateProduct(categoryID, in)
	if err != nil {
		return c.fail(errmsg.OpProductCreate, f.name, err)
	}
	c.logger.Info("product created", zap.String("id", p.ID), zap.String("category", categoryID))
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", p.ID, p.Name)
	return nil
}

func (c *cli) productList(cmd *cobra.Command, args []string) error {
	st, err := c.openStore()
	if err != nil {
		return c.fail(errmsg.OpInitialize, "", err)
	}
	defer st.Close()

	if _, err := st.GetCategory(args[0]); err != nil {
		return c.fail(errmsg.OpProductLoad, args[0], err)
	}
	products, err := st.ListProducts(args[0])
	if err != nil {
		return c.fail(errmsg.OpProductLoad, args[0], err)
	}

	out := cmd.OutOrStdout()
	if len(products) == 0 {
		fmt.Fprintln(out, "No products in this category yet.")
		return nil
	}
	for _, p := range products {
		price := inquiry.FormatPrice(p.Price)
		if price == "" {
			price = "on request"
		}
		fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", p.ID, p.Name, price, p.ImageURL)
	}
	return nil
}

// productUpdate applies only the flags that were set on the command line.
func (c *cli) productUpdate(cmd *cobra.Command, id string, f productFlags) error {
	st, err := c.openStore()
	if err != nil {
		return c.fail(errmsg.OpInitialize, "", err)
	}
	defer st.Close()

	p, err := st.GetProduct(id)
	if err != nil {
		return c.fail(errmsg.OpProductUpdate, id, err)
	}

	in := store.ProductInput{
		Name:        p.Name,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Price:       p.Price,
	}
	flags := cmd.Flags()
	if flags.Changed("name") {
		in.Name = f.name
	}
	if flags.Changed("description") {
		in.Description = f.description
	}
	if flags.Changed("price") {
		in.Price = f.price
	}
	if flags.Changed("image") {
		if in.ImageURL, err = c.uploadImage(st, p.CategoryID, f.image); err != nil {
			return c.fail(errmsg.OpImageStore, f.image, err)
		}
	}

	if err := st.UpdateProduct(id, in); err != nil {
		return c.fail(errmsg.OpProductUpdate, id, err)
	}
	c.logger.Info("product updated", zap.String("id", id))
	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", id)
	return nil
}

func (c *cli) productRemove(cmd *cobra.Command, args []string) error {
	st, err := c.openStore()
	if err != nil {
		return c.fail(errmsg.OpInitialize, "", err)
	}
	defer st.Close()

	if err := st.DeleteProduct(args[0]); err != nil {
		return c.fail(errmsg.OpProductDelete, args[0], err)
	}
	c.logger.Info("product deleted", zap.String("id", args[0]))
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
	return nil
}
