// Package handler 提供 HTTP 请求处理器
package handler

import (
	"github.com/gin-gonic/gin"

	"loreforge-ai-api/internal/application/generation"
	"loreforge-ai-api/internal/domain/entity"
	"loreforge-ai-api/internal/interfaces/http/dto"
	"loreforge-ai-api/pkg/logger"
)

// GenerationHandler 设定生成处理器
type GenerationHandler struct {
	generator *generation.Generator
	saver     *generation.Saver
}

// NewGenerationHandler 创建设定生成处理器
func NewGenerationHandler(generator *generation.Generator, saver *generation.Saver) *GenerationHandler {
	return &GenerationHandler{
		generator: generator,
		saver:     saver,
	}
}

// Generate 生成单个设定实体
// @Summary 生成设定实体
// @Description 根据提示词与世界观上下文生成一个设定实体
// @Tags Generation
// @Accept json
// @Produce json
// @Param entity_type path string true "实体类型"
// @Param request body dto.GenerateRequest true "生成请求"
// @Success 200 {object} generation.Result
// @Router /v1/generation/{entity_type} [post]
func (h *GenerationHandler) Generate(c *gin.Context) {
	entityType := entity.EntityType(c.Param("entity_type"))
	if !entityType.IsSupported() {
		dto.BadRequest(c, "unsupported entity type: "+string(entityType))
		return
	}

	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	result := h.generator.Generate(c.Request.Context(), req.ToGenerationRequest(entityType))
	dto.Success(c, result)
}

// GenerateBatch 批量生成设定实体
// @Summary 批量生成设定实体
// @Description 批量生成多个设定实体，结果顺序与请求一致
// @Tags Generation
// @Accept json
// @Produce json
// @Param request body dto.BatchGenerateRequest true "批量生成请求"
// @Success 200 {array} generation.Result
// @Router /v1/generation/batch [post]
func (h *GenerationHandler) GenerateBatch(c *gin.Context) {
	var req dto.BatchGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	reqs := make([]generation.Request, 0, len(req.Items))
	for _, item := range req.Items {
		reqs = append(reqs, item.ToGenerationRequest(entity.EntityType(item.EntityType)))
	}

	results := h.generator.GenerateBatch(c.Request.Context(), reqs)
	dto.Success(c, results)
}

// Save 保存生成结果
// @Summary 保存生成结果
// @Description 把一次生成的数据写入对应的实体表
// @Tags Generation
// @Accept json
// @Produce json
// @Param request body dto.SaveRequest true "落库请求"
// @Success 201 {object} generation.SaveResult
// @Router /v1/generation/save [post]
func (h *GenerationHandler) Save(c *gin.Context) {
	var req dto.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	result := h.saver.Save(c.Request.Context(), entity.EntityType(req.EntityType), req.Data, req.WorldID, req.ProjectID)
	if !result.Success {
		logger.Warn(c.Request.Context(), "save generated entity rejected",
			"entity_type", req.EntityType,
			"reason", result.Error,
		)
		dto.UnprocessableEntity(c, result.Error, nil)
		return
	}
	dto.Created(c, result)
}

// GetFields 查询实体类型在某策略下的字段集
// @Summary 查询实体字段
// @Description 返回实体类型在指定策略下请求的字段与必填字段
// @Tags Generation
// @Produce json
// @Param entity_type path string true "实体类型"
// @Param strategy query string false "生成策略"
// @Success 200 {object} dto.EntityFieldsResponse
// @Router /v1/generation/{entity_type}/fields [get]
func (h *GenerationHandler) GetFields(c *gin.Context) {
	entityType := entity.EntityType(c.Param("entity_type"))
	if !entityType.IsSupported() {
		dto.BadRequest(c, "unsupported entity type: "+string(entityType))
		return
	}

	strategy := generation.SelectStrategy(c.Request.Context(), entityType, c.Query("strategy"))
	dto.Success(c, dto.EntityFieldsResponse{
		EntityType:     string(entityType),
		DisplayName:    entityType.DisplayName(),
		Strategy:       string(strategy),
		Fields:         generation.GetEntityFields(entityType, strategy),
		RequiredFields: generation.GetRequiredFields(entityType),
	})
}

// ListStrategies 查询可用的生成策略
// @Summary 查询生成策略
// @Description 返回全部可用的生成策略及说明
// @Tags Generation
// @Produce json
// @Success 200 {object} dto.StrategiesResponse
// @Router /v1/generation/strategies [get]
func (h *GenerationHandler) ListStrategies(c *gin.Context) {
	dto.Success(c, dto.StrategiesResponse{
		Default:    string(generation.DefaultStrategy),
		Strategies: generation.ListAvailableStrategies(),
	})
}

// ListTypes 查询支持的实体类型
// @Summary 查询实体类型
// @Description 返回全部受支持的设定实体类型
// @Tags Generation
// @Produce json
// @Success 200 {object} dto.SupportedTypesResponse
// @Router /v1/generation/types [get]
func (h *GenerationHandler) ListTypes(c *gin.Context) {
	types := entity.AllEntityTypes()
	out := make([]dto.SupportedType, 0, len(types))
	for _, t := range types {
		out = append(out, dto.SupportedType{
			EntityType:  string(t),
			DisplayName: t.DisplayName(),
		})
	}
	dto.Success(c, dto.SupportedTypesResponse{Types: out})
}
