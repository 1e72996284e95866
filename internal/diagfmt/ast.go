package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"pasc/internal/ast"
	"pasc/internal/expr"
	"pasc/internal/source"
)

type treeNode struct {
	label    string
	children []*treeNode
}

func leaf(format string, args ...any) *treeNode {
	return &treeNode{label: fmt.Sprintf(format, args...)}
}

// FormatASTPretty печатает дерево файла с отступами ├─ / └─.
func FormatASTPretty(w io.Writer, builder *ast.Builder, fileID ast.FileID, fs *source.FileSet) error {
	root, err := buildFileTreeNode(builder, fileID, fs)
	if err != nil {
		return err
	}
	var sb strings.Builder
	sb.WriteString(root.label)
	sb.WriteByte('\n')
	writeChildren(&sb, root.children, "")
	_, err = io.WriteString(w, sb.String())
	return err
}

func writeChildren(sb *strings.Builder, children []*treeNode, prefix string) {
	for i, child := range children {
		branch, next := "├─ ", "│  "
		if i == len(children)-1 {
			branch, next = "└─ ", "   "
		}
		sb.WriteString(prefix)
		sb.WriteString(branch)
		sb.WriteString(child.label)
		sb.WriteByte('\n')
		writeChildren(sb, child.children, prefix+next)
	}
}

func buildFileTreeNode(builder *ast.Builder, fileID ast.FileID, fs *source.FileSet) (*treeNode, error) {
	if builder == nil {
		return nil, fmt.Errorf("file not found")
	}
	file := builder.Files.Get(fileID)
	if file == nil {
		return nil, fmt.Errorf("file not found")
	}
	header := "Program"
	if file.Name.Name != "" {
		header = fmt.Sprintf("Program %s", file.Name.Name)
	}
	root := leaf("%s (span: %s)", header, formatSpan(file.Span, fs))
	for idx, itemID := range file.Items {
		root.children = append(root.children, buildItemTreeNode(builder, itemID, fs, idx))
	}
	return root, nil
}

func buildItemTreeNode(builder *ast.Builder, itemID ast.ItemID, fs *source.FileSet, idx int) *treeNode {
	item := builder.Items.Get(itemID)
	if item == nil {
		return leaf("Item[%d]: <nil>", idx)
	}
	node := leaf("Item[%d]: %s (span: %s)", idx, item.Kind, formatSpan(item.Span, fs))
	switch item.Kind {
	case ast.ItemConst:
		if c, ok := builder.Items.Const(itemID); ok {
			node.children = append(node.children,
				leaf("Name: %s", c.Name.Name),
				leaf("Value: %s", expr.Format(c.Value)))
		}
	case ast.ItemType:
		if t, ok := builder.Items.Type(itemID); ok {
			node.children = append(node.children,
				leaf("Name: %s", t.Name.Name),
				buildTypeTreeNode(builder, t.Type, "Type"))
		}
	case ast.ItemVar:
		if v, ok := builder.Items.Var(itemID); ok {
			node.children = append(node.children,
				leaf("Names: %s", joinIdents(v.Names)),
				buildTypeTreeNode(builder, v.Type, "Type"))
		}
	}
	return node
}

func buildTypeTreeNode(builder *ast.Builder, id ast.TypeID, role string) *treeNode {
	te := builder.Types.Get(id)
	if te == nil {
		return leaf("%s: <none>", role)
	}
	switch te.Kind {
	case ast.TypeExprName:
		n, _ := builder.Types.Name(id)
		return leaf("%s: %s", role, n.Name.Name)
	case ast.TypeExprRange:
		r, _ := builder.Types.Range(id)
		return leaf("%s: Range %s..%s", role, expr.Format(r.Lo), expr.Format(r.Hi))
	case ast.TypeExprEnum:
		e, _ := builder.Types.Enum(id)
		return leaf("%s: Enum (%s)", role, joinIdents(e.Variants))
	case ast.TypeExprSet:
		s, _ := builder.Types.Set(id)
		node := leaf("%s: Set", role)
		node.children = append(node.children, buildTypeTreeNode(builder, s.Elem, "Elem"))
		return node
	case ast.TypeExprArray:
		a, _ := builder.Types.Array(id)
		node := leaf("%s: Array", role)
		for i, dim := range a.Dims {
			node.children = append(node.children, buildTypeTreeNode(builder, dim, fmt.Sprintf("Dim[%d]", i)))
		}
		node.children = append(node.children, buildTypeTreeNode(builder, a.Elem, "Elem"))
		return node
	case ast.TypeExprRecord:
		r, _ := builder.Types.Record(id)
		node := leaf("%s: Record", role)
		for _, f := range r.Fields {
			node.children = append(node.children, buildTypeTreeNode(builder, f.Type, "Field "+joinIdents(f.Names)))
		}
		return node
	}
	return leaf("%s: %s", role, te.Kind)
}

func joinIdents(ids []ast.Ident) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.Name
	}
	return strings.Join(names, ", ")
}

type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Kind     string          `json:"kind,omitempty"`
	Span     source.Span     `json:"span"`
	Text     string          `json:"text,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
	Fields   map[string]any  `json:"fields,omitempty"`
}

// FormatASTJSON пишет дерево файла в JSON.
func FormatASTJSON(w io.Writer, builder *ast.Builder, fileID ast.FileID) error {
	if builder == nil || builder.Files.Get(fileID) == nil {
		return fmt.Errorf("file not found")
	}
	file := builder.Files.Get(fileID)
	output := ASTNodeOutput{
		Type: "Program",
		Text: file.Name.Name,
		Span: file.Span,
	}
	for _, itemID := range file.Items {
		output.Children = append(output.Children, itemJSON(builder, itemID))
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func itemJSON(builder *ast.Builder, itemID ast.ItemID) ASTNodeOutput {
	item := builder.Items.Get(itemID)
	if item == nil {
		return ASTNodeOutput{Type: "Item", Kind: "nil"}
	}
	out := ASTNodeOutput{Type: "Item", Kind: item.Kind.String(), Span: item.Span}
	switch item.Kind {
	case ast.ItemConst:
		if c, ok := builder.Items.Const(itemID); ok {
			out.Text = c.Name.Name
			out.Fields = map[string]any{"value": expr.Format(c.Value)}
		}
	case ast.ItemType:
		if t, ok := builder.Items.Type(itemID); ok {
			out.Text = t.Name.Name
			out.Children = []ASTNodeOutput{typeJSON(builder, t.Type)}
		}
	case ast.ItemVar:
		if v, ok := builder.Items.Var(itemID); ok {
			out.Text = joinIdents(v.Names)
			out.Children = []ASTNodeOutput{typeJSON(builder, v.Type)}
		}
	}
	return out
}

func typeJSON(builder *ast.Builder, id ast.TypeID) ASTNodeOutput {
	te := builder.Types.Get(id)
	if te == nil {
		return ASTNodeOutput{Type: "TypeExpr", Kind: "none"}
	}
	out := ASTNodeOutput{Type: "TypeExpr", Kind: te.Kind.String(), Span: te.Span}
	switch te.Kind {
	case ast.TypeExprName:
		n, _ := builder.Types.Name(id)
		out.Text = n.Name.Name
	case ast.TypeExprRange:
		r, _ := builder.Types.Range(id)
		out.Fields = map[string]any{"lo": expr.Format(r.Lo), "hi": expr.Format(r.Hi)}
	case ast.TypeExprEnum:
		e, _ := builder.Types.Enum(id)
		variants := make([]string, len(e.Variants))
		for i, v := range e.Variants {
			variants[i] = v.Name
		}
		out.Fields = map[string]any{"variants": variants}
	case ast.TypeExprSet:
		s, _ := builder.Types.Set(id)
		out.Children = []ASTNodeOutput{typeJSON(builder, s.Elem)}
	case ast.TypeExprArray:
		a, _ := builder.Types.Array(id)
		for _, dim := range a.Dims {
			out.Children = append(out.Children, typeJSON(builder, dim))
		}
		out.Children = append(out.Children, typeJSON(builder, a.Elem))
		out.Fields = map[string]any{"dims": len(a.Dims)}
	case ast.TypeExprRecord:
		r, _ := builder.Types.Record(id)
		for _, f := range r.Fields {
			out.Children = append(out.Children, ASTNodeOutput{
				Type:     "Field",
				Text:     joinIdents(f.Names),
				Span:     f.Span,
				Children: []ASTNodeOutput{typeJSON(builder, f.Type)},
			})
		}
	}
	return out
}
