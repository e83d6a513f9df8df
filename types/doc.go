// Copyright (c) repo-quality-tool Authors.
// Licensed under the MIT License.

/*
Package types 提供全局共享的类型定义。

# 概述

types 是最底层的公共包，不依赖任何内部包，为 halstead、tokenizer、
analyzer 等上层模块提供统一的类型契约。

# 核心类型

  - Kind              — 开放的词法单元分类枚举（Punctuator / Keyword / Identifier 等）
  - Token             — 分词器产出的不可变词法单元（Kind + Value）
  - Error / ErrorCode — 结构化错误体系，含源码行列位置

# 主要能力

  - 分类名称解析：ParseKind / Kinds
  - 错误工具链：GetErrorCode / IsErrorCode / IsTokenizationError
*/
package types
