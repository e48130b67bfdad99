// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Page is an admin page registered with the host admin menu.
type Page struct {
	// Parent is the menu the page is attached to ("upload.php" for the media
	// menu, "settings.php" for the network settings menu).
	Parent     string `json:"parent"`
	PageTitle  string `json:"page_title"`
	MenuTitle  string `json:"menu_title"`
	Capability string `json:"capability"`
	Slug       string `json:"slug"`
}

// PageView names the external view template that renders a page and the
// data handed to it.
type PageView struct {
	Slug     string `json:"slug"`
	Template string `json:"template"`
	// Path is the template file under the plugin root.
	Path      string    `json:"path"`
	Wildcards Wildcards `json:"wildcards,omitempty"`
}

// Site describes the current site of the installation.
type Site struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

// Paths holds the installation directories probed for the key file.
type Paths struct {
	// Root is the CMS root directory.
	Root string
	// Content is the content directory.
	Content string
	// Uploads is the uploads base directory.
	Uploads string
	// Plugin is the plugin root directory.
	Plugin string
}
