package schema

// DocumentSchema is the expected column layout for document import files.
// Column names come in German, English and French depending on which locale
// exported the file; the German spelling is canonical.
var DocumentSchema = Schema{
	Columns: []ColumnSpec{
		{Variants: []string{"DokumentUrl*", "Document url*", "URL du document*"}},
		{Variants: []string{"Verknüpfungsart*", "Url type*", "Type de lien*"}},
		{Variants: []string{"Abonnements", "Subscriptions"}},
		{Variants: []string{"Dokumentbeschreibung", "Document description", "Descriptif des documents"}},
		{Variants: []string{"Sprache*", "Language*", "Langue*"}},
		{Variants: []string{"Dokumenttyp*", "Document type*", "Type de document*"}},
		{Variants: []string{"Dokumentnummer", "Document identifier", "Indice du document"}},
		{Variants: []string{"Ausgabedatum", "Publication date", "Date de publication"}},
		{Variants: []string{"AcCode*"}},
		{Variants: []string{"ID"}},
		{Variants: []string{"Hosted Datei ID", "Hosted file ID", "ID du fichier hébergé"}},
		{Variants: []string{"Löschen", "Delete", "Supprimer"}},
	},
	Identifier: "ID",
	CodeColumn: "AcCode*",
}

func init() {
	Register("document", DocumentSchema)
}
