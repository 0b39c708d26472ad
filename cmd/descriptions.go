package cmd

const rootLongDescription = `Paramfix migrates route handlers to asynchronous route parameters.

Every route.ts below the root directory (app/api by default) is scanned for
handlers declared as

  export async function GET(request, { params }: { params: Promise<{ id: string }> })

For each one, "const { id } = await params" becomes the first statement of
the body and every params.id inside that handler becomes id. Handlers that
already await params are left alone, so running paramfix twice is safe.

Settings are read from .paramfix.yaml (or --config), then PARAMFIX_*
environment variables, then flags.

Put "// paramfix:ignore" above a handler to skip it, or
"// paramfix:ignore GET, POST" in the file header to skip handlers by name.`

const listLongDescription = `List every route file below the root directory together with the number of
handlers that still need rewriting. Nothing is written.`

const viewLongDescription = `Print the results stored in a YAML report written with --report. The
report path defaults to the configured report setting.`
