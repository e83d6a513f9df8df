// =============================================================================
// 📦 测试数据工厂 - 源码样例
// =============================================================================
// 提供预定义的源码片段及其期望的 Halstead 度量
// =============================================================================
package fixtures

// =============================================================================
// 📜 JavaScript 样例
// =============================================================================

// JSDeclaration 五个不同 Token，各出现一次
const JSDeclaration = "let x = 1;"

// JSDeclaration 的期望度量
const (
	JSDeclarationVocabulary = 5
	JSDeclarationLength     = 5
	JSDeclarationVolume     = 11.61
	JSDeclarationDifficulty = 1.5
	JSDeclarationEffort     = 17.41
)

// JSCommentOnly 只有注释与空白，没有可计数的 Token
const JSCommentOnly = "// nothing here\n/* still nothing */\n\n"

// JSFunction 较完整的函数，包含正则、模板与布尔字面量
const JSFunction = `function greet(name) {
  if (name === null || /^\s*$/.test(name)) {
    return false;
  }
  const msg = ` + "`hello ${name}`" + `;
  console.log(msg, 42);
  return true;
}
`

// JSUnterminated 未闭合的字符串，分词失败
const JSUnterminated = `var s = "abc`

// =============================================================================
// 🐹 Go 样例
// =============================================================================

// GoProgram 最小的 Go 程序
const GoProgram = `package main

import "fmt"

func main() {
	fmt.Println("hi", 1)
}
`

// GoUnterminated 未闭合的原始字符串，分词失败
const GoUnterminated = "package p\n\nvar s = `open\n"
