package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arambha/showroom/internal/catalog"
	"github.com/arambha/showroom/internal/errmsg"
)

func (c *cli) categoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage catalog categories",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add [collection] [name]",
			Short: "Add a category to furniture or interiors",
			Args:  cobra.ExactArgs(2),
			RunE:  c.categoryAdd,
		},
		&cobra.Command{
			Use:   "list [collection]",
			Short: "List a collection's categories",
			Args:  cobra.ExactArgs(1),
			RunE:  c.categoryList,
		},
		&cobra.Command{
			Use:   "rename [id] [name]",
			Short: "Rename a category",
			Args:  cobra.ExactArgs(2),
			RunE:  c.categoryRename,
		},
		&cobra.Command{
			Use:   "rm [id]",
			Short: "Delete a category and all of its products",
			Args:  cobra.ExactArgs(1),
			RunE:  c.categoryRemove,
		},
	)
	return cmd
}

func (c *cli) categoryAdd(cmd *cobra.Command, args []string) error {
	collection, err := catalog.ParseCollection(args[0])
	if err != nil {
		return c.fail(errmsg.OpCategoryCreate, args[0], err)
	}

	st, err := c.openStore()
	if err != nil {
		return c.fail(errmsg.OpInitialize, "", err)
	}
	defer st.Close()

	cat, err := st.CreateCategory(collection, args[1])
	if err != nil {
		return c.fail(errmsg.OpCategoryCreate, args[1], err)
	}
	c.logger.Info("category created", zap.String("id", cat.ID), zap.String("slug", cat.Slug))
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", cat.ID, cat.Name)
	return nil
}

func (c *cli) categoryList(cmd *cobra.Command, args []string) error {
	collection, err := catalog.ParseCollection(args[0])
	if err != nil {
		return c.fail(errmsg.OpCategoryLoad, args[0], err)
	}

	st, err := c.openStore()
	if err != nil {
		return c.fail(errmsg.OpInitialize, "", err)
	}
	defer st.Close()

	cats, err := st.ListCategories(collection)
	if err != nil {
		return c.fail(errmsg.OpCategoryLoad, string(collection), err)
	}

	out := cmd.OutOrStdout()
	if len(cats) == 0 {
		fmt.Fprintf(out, "No %s categories yet.\n", collection)
		return nil
	}
	for _, cat := range cats {
		fmt.Fprintf(out, "%s\t%s\t%s\tupdated %s\n",
			cat.ID, cat.Name, cat.Slug, humanize.Time(cat.UpdatedAt))
	}
	return nil
}

func (c *cli) categoryRename(cmd *cobra.Command, args []string) error {
	st, err := c.openStore()
	if err != nil {
		return c.fail(errmsg.OpInitialize, "", err)
	}
	defer st.Close()

	if err := st.RenameCategory(args[0], args[1]); err != nil {
		return c.fail(errmsg.OpCategoryRename, args[0], err)
	}
	c.logger.Info("category renamed", zap.String("id", args[0]), zap.String("name", args[1]))
	fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %s\n", args[0], args[1])
	return nil
}

func (c *cli) categoryRemove(cmd *cobra.Command, args []string) error {
	st, err := c.openStore()
	if err != nil {
		return c.fail(errmsg.OpInitialize, "", err)
	}
	defer st.Close()

	if err := st.DeleteCategory(args[0]); err != nil {
		return c.fail(errmsg.OpCategoryDelete, args[0], err)
	}
	c.logger.Info("category deleted", zap.String("id", args[0]))
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
	return nil
}
