package site

// BuildFolders loads every resolved page in manifest order and assembles the
// site tree. Loading never drops a page, so every resolved folder, which
// ResolveManifest only returns with at least one page, ends up non-empty.
func BuildFolders(resolved []ResolvedFolder, loader *DocumentLoader) []*Folder {
	folders := make([]*Folder, 0, len(resolved))
	for _, rf := range resolved {
		folder := &Folder{Name: rf.Name, Pages: make([]*Page, 0, len(rf.Pages))}
		for _, rp := range rf.Pages {
			folder.Pages = append(folder.Pages, loader.Load(rf.Name, rp))
		}
		folders = append(folders, folder)
	}
	return folders
}
