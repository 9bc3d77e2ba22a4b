package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/magasin-pro/internal/application/dataset"
	"github.com/jhoicas/magasin-pro/internal/infrastructure/tabular"
)

// Diagnóstico rápido de archivos de dataset antes de subirlos: imprime lo
// que vería la importación (cabeceras, columnas faltantes, filas) sin tocar
// la DB ni la API.
//
// Uso: go run . ruta/al/archivo.csv (también .xlsx y .xls)
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "uso: go run . <archivo.csv|.xlsx|.xls>")
		os.Exit(1)
	}
	path := os.Args[1]

	fmt.Println("🔍 DIAGNÓSTICO DE DATASET")
	fmt.Println("-------------------------")
	fmt.Printf("📂 Leyendo: %s\n", path)

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Println("\n❌ ERROR DE ARCHIVO:")
		fmt.Printf("   Detalle técnico: %v\n", err)
		return
	}
	fmt.Printf("✅ Archivo leído. Tamaño: %d bytes\n", len(data))

	table, err := tabular.Parse(data, path)
	if err != nil {
		fmt.Println("\n❌ ERROR DE PARSEO:")
		fmt.Printf("   La importación rechazaría este archivo.\n")
		fmt.Printf("   Detalle técnico: %v\n", err)
		return
	}
	fmt.Printf("\n✅ Cabeceras (%d): %v\n", len(table.Headers), table.Headers)
	fmt.Printf("✅ Filas de datos: %d\n", len(table.Rows))

	if missing := table.MissingColumns(dataset.RequiredColumns); len(missing) > 0 {
		fmt.Printf("\n❌ COLUMNAS FALTANTES: %v\n", missing)
		fmt.Println("   La importación rechazaría este archivo.")
		return
	}
	fmt.Println("✅ Todas las columnas requeridas están presentes.")

	// Primeras filas numeradas como lo haría el informe de importación
	// (cabecera = línea 1).
	n := len(table.Rows)
	if n > 5 {
		n = 5
	}
	fmt.Println()
	for i := 0; i < n; i++ {
		fmt.Printf("   Ligne %d: %v\n", i+2, table.Rows[i])
	}
	if len(table.Rows) > n {
		fmt.Printf("   ... y %d filas más\n", len(table.Rows)-n)
	}
}
