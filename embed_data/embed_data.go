package embed_data

import _ "embed"

//go:embed prompts/dev_system_prompt.txt
var DevSystemPrompt []byte

//go:embed models_details.json
var ModelDetails []byte

//go:embed queries/go.json
var GoQuery []byte

//go:embed queries/python.json
var PythonQuery []byte

//go:embed queries/javascript.json
var JavascriptQuery []byte

//go:embed queries/typescript.json
var TypescriptQuery []byte

//go:embed queries/java.json
var JavaQuery []byte

//go:embed queries/csharp.json
var CSharpQuery []byte
